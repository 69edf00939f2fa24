package anysock

import (
	"net"
	"net/netip"
	"strconv"
)

const localPrefix = "unix:"

var (
	_ Resolver = IPAddr{}
	_ Resolver = HostPort{}
	_ Resolver = Text("")
	_ Resolver = Addr{}
)

// IPAddr is a structured network endpoint.  It always resolves to TCP.
type IPAddr netip.AddrPort

// Bind TCP
func (a IPAddr) Bind(t Transport) (*Listener, error) {
	return t.listen(KindNetwork, netip.AddrPort(a).String())
}

// Connect TCP
func (a IPAddr) Connect(t Transport) (*Stream, error) {
	return t.dial(KindNetwork, netip.AddrPort(a).String())
}

// HostPort is a host name or IP literal paired with a port.  The host is
// resolved by the net package.
type HostPort struct {
	Host string
	Port uint16
}

func (hp HostPort) String() string {
	return net.JoinHostPort(hp.Host, strconv.Itoa(int(hp.Port)))
}

// Bind TCP
func (hp HostPort) Bind(t Transport) (*Listener, error) {
	return t.listen(KindNetwork, hp.String())
}

// Connect TCP
func (hp HostPort) Connect(t Transport) (*Stream, error) {
	return t.dial(KindNetwork, hp.String())
}

// Text is a textual address.  When local transport is available, text
// beginning with "unix:" names a local socket path (the remainder, taken
// verbatim).  Anything else is a TCP host:port resolved by the net package.
type Text string

// Bind to the address
func (s Text) Bind(t Transport) (*Listener, error) {
	if path, ok := cutLocal(string(s)); ok {
		return t.listen(KindLocal, path)
	}

	return t.listen(KindNetwork, string(s))
}

// Connect to the address
func (s Text) Connect(t Transport) (*Stream, error) {
	if path, ok := cutLocal(string(s)); ok {
		return t.dial(KindLocal, path)
	}

	return t.dial(KindNetwork, string(s))
}
