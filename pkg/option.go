package anysock

import (
	"github.com/lthibault/anysock/pkg/transport/generic"
	"github.com/lthibault/anysock/pkg/transport/tcp"
	"github.com/lthibault/anysock/pkg/transport/unix"
	log "github.com/lthibault/log/pkg"
)

// Option for Transport
type Option func(*Transport) (prev Option)

// OptTCP sets an option on the TCP transport
func OptTCP(opt tcp.Option) Option {
	return func(t *Transport) Option {
		return OptTCP(opt(&t.TCP))
	}
}

// OptUnix sets an option on the Unix transport
func OptUnix(opt unix.Option) Option {
	return func(t *Transport) Option {
		return OptUnix(opt(&t.Unix))
	}
}

// OptGeneric sets an option on both the TCP and the Unix transports
func OptGeneric(opt generic.Option) Option { return optPair(opt, opt) }

func optPair(tcpOpt, unixOpt generic.Option) Option {
	return func(t *Transport) Option {
		return optPair(tcpOpt(&t.TCP.Transport), unixOpt(&t.Unix.Transport))
	}
}

// OptLogger sets the logger on both transports
func OptLogger(l log.Logger) Option {
	return OptGeneric(generic.OptLogger(l))
}
