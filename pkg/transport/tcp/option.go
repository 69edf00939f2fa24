package tcp

import (
	"net"

	"github.com/lthibault/anysock/pkg/transport/generic"
)

// Option for TCP transport
type Option func(*Transport) (prev Option)

// OptListener sets the ListenConfig
func OptListener(l *net.ListenConfig) Option {
	return OptGeneric(generic.OptListener(l))
}

// OptDialer sets the dialer
func OptDialer(d *net.Dialer) Option {
	return OptGeneric(generic.OptDialer(d))
}

// OptGeneric sets an option on the underlying generic transport
func OptGeneric(opt generic.Option) Option {
	return func(t *Transport) Option {
		return OptGeneric(opt(&t.Transport))
	}
}
