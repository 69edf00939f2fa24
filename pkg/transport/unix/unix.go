package unix

import (
	"net"

	"github.com/lthibault/anysock/pkg/transport/generic"
	"github.com/pkg/errors"
)

// Transport over Unix domain socket
type Transport struct{ generic.Transport }

// Listen Unix
func (t Transport) Listen(network, path string) (net.Listener, error) {
	if network != "unix" {
		return nil, errors.Errorf("unix: invalid network %s", network)
	}

	return t.Transport.Listen(network, path)
}

// Dial Unix
func (t Transport) Dial(network, path string) (net.Conn, error) {
	if network != "unix" {
		return nil, errors.Errorf("unix: invalid network %s", network)
	}

	return t.Transport.Dial(network, path)
}

// New Unix Transport
func New(opt ...Option) (t Transport) {
	t.Transport = generic.New()

	for _, fn := range opt {
		fn(&t)
	}

	return t
}
