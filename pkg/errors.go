package anysock

import (
	"io/fs"

	"github.com/pkg/errors"
)

var (
	// ErrExist is returned when binding to an address that denotes an
	// existing endpoint rather than a bindable one.  It matches fs.ErrExist.
	ErrExist = errors.WithMessage(fs.ErrExist, "cannot bind to an existing address")

	// ErrUnnamed is returned when connecting to a local endpoint that has no
	// path.  It matches fs.ErrNotExist.
	ErrUnnamed = errors.WithMessage(fs.ErrNotExist, "cannot connect to unnamed address")

	errNoLocal = errors.New("local transport not supported")
)
