package anysock

import "net"

// Listener is a bound, listening TCP or Unix socket.  It owns the
// underlying socket; Close releases it.
type Listener struct {
	kind Kind
	ln   net.Listener
}

// Kind of transport
func (l *Listener) Kind() Kind { return l.kind }

// LocalAddr queries the OS for the address the listener is bound to
func (l *Listener) LocalAddr() (Addr, error) {
	return sockname(l.ln, l.ln.Addr)
}

// Accept blocks until a connection arrives.  It returns the connection and
// the address of its peer.
func (l *Listener) Accept() (*Stream, Addr, error) {
	conn, err := l.ln.Accept()
	if err != nil {
		return nil, Addr{}, err
	}

	peer, err := peername(conn)
	if err != nil {
		conn.Close()
		return nil, Addr{}, err
	}

	return &Stream{kind: l.kind, conn: conn}, peer, nil
}

// Close the listener.  Unix listeners remove their socket file.
func (l *Listener) Close() error { return l.ln.Close() }
