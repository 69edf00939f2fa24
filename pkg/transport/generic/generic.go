package generic

import (
	"context"
	"net"

	log "github.com/lthibault/log/pkg"
)

// Transport for any stream-oriented network supported by the net package.
// Errors returned by the NetListener and NetDialer are passed through as-is.
type Transport struct {
	NetListener
	NetDialer
	Logger log.Logger
}

// Listen on the named network
func (t Transport) Listen(network, address string) (net.Listener, error) {
	l := t.Logger.WithField("network", network).WithField("addr", address)
	l.Debug("listening")

	ln, err := t.NetListener.Listen(context.Background(), network, address)
	if err != nil {
		l.WithError(err).Debug("listen failed")
		return nil, err
	}

	return ln, nil
}

// Dial the named network
func (t Transport) Dial(network, address string) (net.Conn, error) {
	l := t.Logger.WithField("network", network).WithField("addr", address)
	l.Debug("dialing")

	conn, err := t.NetDialer.DialContext(context.Background(), network, address)
	if err != nil {
		l.WithError(err).Debug("dial failed")
		return nil, err
	}

	return conn, nil
}

// New Generic Transport
func New(opt ...Option) (t Transport) {
	t.NetListener = new(net.ListenConfig)
	t.NetDialer = new(net.Dialer)
	t.Logger = log.New(log.OptLevel(log.NullLevel))

	for _, fn := range opt {
		fn(&t)
	}

	return t
}
