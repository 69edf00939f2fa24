package tcp

import (
	"net"

	"github.com/lthibault/anysock/pkg/transport/generic"
	"github.com/pkg/errors"
)

func checkNetwork(network string) (ok bool) {
	switch network {
	case "tcp", "tcp4", "tcp6":
		ok = true
	}

	return
}

// Transport over TCP
type Transport struct{ generic.Transport }

// Listen TCP
func (t Transport) Listen(network, address string) (net.Listener, error) {
	if !checkNetwork(network) {
		return nil, errors.Errorf("tcp: invalid network %s", network)
	}

	return t.Transport.Listen(network, address)
}

// Dial TCP
func (t Transport) Dial(network, address string) (net.Conn, error) {
	if !checkNetwork(network) {
		return nil, errors.Errorf("tcp: invalid network %s", network)
	}

	return t.Transport.Dial(network, address)
}

// New TCP Transport
func New(opt ...Option) (t Transport) {
	t.Transport = generic.New()

	for _, fn := range opt {
		fn(&t)
	}

	return t
}
