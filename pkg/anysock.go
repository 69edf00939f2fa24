// Package anysock binds, connects and performs stream I/O over TCP and Unix
// domain sockets through a single set of types.  Callers hand an address-like
// value to Bind or Connect and receive a Listener or a Stream whose transport
// is decided at runtime.
//
//	l, err := anysock.Bind(anysock.Text("unix:/run/app.sock"))
//	s, err := anysock.Connect(anysock.Text("localhost:8080"))
package anysock

import (
	"github.com/lthibault/anysock/pkg/transport/tcp"
	"github.com/lthibault/anysock/pkg/transport/unix"
)

// Kind of transport underlying an Addr, Listener or Stream
type Kind uint8

const (
	// KindNetwork is an IP stream socket (TCP)
	KindNetwork Kind = iota
	// KindLocal is a local stream socket addressed by a filesystem path
	KindLocal
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindLocal:
		return "local"
	}

	return "invalid"
}

func (k Kind) network() string {
	if k == KindLocal {
		return "unix"
	}
	return "tcp"
}

// Resolver is an address-like value that knows which transport it names.
// Bind creates a listener at the address; Connect dials it.
type Resolver interface {
	Bind(Transport) (*Listener, error)
	Connect(Transport) (*Stream, error)
}

// DefaultTransport is used by Bind and Connect
var DefaultTransport = NewTransport()

// Transport binds and dials on behalf of a Resolver
type Transport struct {
	TCP  tcp.Transport
	Unix unix.Transport
}

// NewTransport with default TCP and Unix transports
func NewTransport(opt ...Option) (t Transport) {
	t.TCP = tcp.New()
	t.Unix = unix.New()

	for _, fn := range opt {
		fn(&t)
	}

	return t
}

// Bind a listener to the address denoted by r
func (t Transport) Bind(r Resolver) (*Listener, error) { return r.Bind(t) }

// Connect to the address denoted by r
func (t Transport) Connect(r Resolver) (*Stream, error) { return r.Connect(t) }

func (t Transport) listen(k Kind, address string) (*Listener, error) {
	var err error
	l := &Listener{kind: k}

	switch k {
	case KindLocal:
		l.ln, err = t.Unix.Listen(k.network(), address)
	default:
		l.ln, err = t.TCP.Listen(k.network(), address)
	}

	if err != nil {
		return nil, err
	}

	return l, nil
}

func (t Transport) dial(k Kind, address string) (*Stream, error) {
	var err error
	s := &Stream{kind: k}

	switch k {
	case KindLocal:
		s.conn, err = t.Unix.Dial(k.network(), address)
	default:
		s.conn, err = t.TCP.Dial(k.network(), address)
	}

	if err != nil {
		return nil, err
	}

	return s, nil
}
