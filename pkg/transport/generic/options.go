package generic

import (
	"context"
	"net"

	log "github.com/lthibault/log/pkg"
)

// NetListener can produce a standard library Listener
type NetListener interface {
	Listen(c context.Context, network, address string) (net.Listener, error)
}

// NetDialer can produce a standard library Conn
type NetDialer interface {
	DialContext(c context.Context, network, address string) (net.Conn, error)
}

// Option for generic transport
type Option func(*Transport) (prev Option)

// OptListener sets the listener
func OptListener(l NetListener) Option {
	return func(t *Transport) (prev Option) {
		prev = OptListener(t.NetListener)
		t.NetListener = l
		return
	}
}

// OptDialer sets the dialer
func OptDialer(d NetDialer) Option {
	return func(t *Transport) (prev Option) {
		prev = OptDialer(t.NetDialer)
		t.NetDialer = d
		return
	}
}

// OptLogger sets the logger.  Transports log at debug level only.
func OptLogger(l log.Logger) Option {
	return func(t *Transport) (prev Option) {
		prev = OptLogger(t.Logger)
		t.Logger = l
		return
	}
}
