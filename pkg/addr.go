package anysock

import (
	"net"
	"net/netip"

	"github.com/pkg/errors"
)

// Addr is either a network endpoint (IP address and port) or a local
// endpoint.  Addrs are produced by Listener, Stream, ParseAddr and
// FromNetAddr; the zero value is not a valid address.
//
// Addr satisfies net.Addr and Resolver.
type Addr struct {
	ip    netip.AddrPort
	local *net.UnixAddr
}

var _ net.Addr = Addr{}

func networkAddr(ap netip.AddrPort) (Addr, error) {
	if !ap.IsValid() {
		return Addr{}, errors.Errorf("invalid network address %s", ap)
	}

	return Addr{ip: netip.AddrPortFrom(ap.Addr().Unmap(), ap.Port())}, nil
}

// ParseAddr parses "unix:<path>" (in builds with local transport support) or
// a numeric "ip:port".  Host names are not resolved.
func ParseAddr(s string) (Addr, error) {
	if path, ok := cutLocal(s); ok {
		return localAddr(&net.UnixAddr{Name: path, Net: "unix"})
	}

	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		return Addr{}, err
	}

	return networkAddr(ap)
}

// FromNetAddr converts a *net.TCPAddr or *net.UnixAddr
func FromNetAddr(a net.Addr) (Addr, error) {
	switch v := a.(type) {
	case Addr:
		return v, nil
	case *net.TCPAddr:
		if v == nil {
			break
		}
		return networkAddr(v.AddrPort())
	case *net.UnixAddr:
		if v == nil {
			break
		}
		return localAddr(v)
	case nil:
	default:
		return Addr{}, errors.Errorf("unsupported address %s (%T)", a, a)
	}

	return Addr{}, errors.New("nil address")
}

// Kind of endpoint
func (a Addr) Kind() Kind {
	if a.local != nil {
		return KindLocal
	}
	return KindNetwork
}

// IsLocal reports whether a is a local endpoint
func (a Addr) IsLocal() bool { return a.local != nil }

// Network returns "tcp" or "unix"
func (a Addr) Network() string { return a.Kind().network() }

// Port of a network address.  Local addresses have no port.
func (a Addr) Port() (uint16, bool) {
	if a.local != nil || !a.ip.IsValid() {
		return 0, false
	}
	return a.ip.Port(), true
}

// AddrPort returns the network endpoint, if any
func (a Addr) AddrPort() (netip.AddrPort, bool) {
	return a.ip, a.local == nil && a.ip.IsValid()
}

// UnixAddr returns a copy of the local endpoint, if any
func (a Addr) UnixAddr() (*net.UnixAddr, bool) {
	if a.local == nil {
		return nil, false
	}

	u := *a.local
	return &u, true
}

// String renders network addresses as host:port, named local addresses as
// unix:<path> and unnamed local addresses as "(unnamed)".
func (a Addr) String() string {
	switch {
	case a.local == nil:
		return a.ip.String()
	case a.local.Name == "":
		return "(unnamed)"
	default:
		return localPrefix + a.local.Name
	}
}

// Bind to a network address.  Local addresses denote existing endpoints and
// always fail with ErrExist.
func (a Addr) Bind(t Transport) (*Listener, error) {
	if a.local != nil {
		return bindLocalEndpoint(t, a.local)
	}

	return IPAddr(a.ip).Bind(t)
}

// Connect to the address
func (a Addr) Connect(t Transport) (*Stream, error) {
	if a.local != nil {
		return connectLocalEndpoint(t, a.local)
	}

	return IPAddr(a.ip).Connect(t)
}
