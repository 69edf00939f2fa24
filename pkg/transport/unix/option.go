package unix

import "github.com/lthibault/anysock/pkg/transport/generic"

// Option for Unix transport
type Option func(*Transport) (prev Option)

// OptGeneric sets an option on the underlying generic transport
func OptGeneric(opt generic.Option) Option {
	return func(t *Transport) Option {
		return OptGeneric(opt(&t.Transport))
	}
}
