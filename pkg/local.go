//go:build unix && !nolocal

package anysock

import (
	"net"
	"runtime"
	"strings"
)

// LocalSupported reports whether this build includes local transport
const LocalSupported = true

var (
	_ Resolver = UnixAddr{}
	_ Resolver = Path("")
)

func cutLocal(s string) (string, bool) {
	return strings.CutPrefix(s, localPrefix)
}

func localAddr(u *net.UnixAddr) (Addr, error) {
	return Addr{local: &net.UnixAddr{Name: u.Name, Net: "unix"}}, nil
}

// UnixAddr describes an existing local endpoint, such as the peer of an
// accepted connection.  It can be connected to if it has a path, but never
// bound.
type UnixAddr net.UnixAddr

// Bind always fails with ErrExist
func (a UnixAddr) Bind(Transport) (*Listener, error) {
	return nil, ErrExist
}

// Connect to the endpoint's path.  Fails with ErrUnnamed if there is none,
// which includes abstract endpoints on linux.
func (a UnixAddr) Connect(t Transport) (*Stream, error) {
	if !a.hasPath() {
		return nil, ErrUnnamed
	}

	return t.dial(KindLocal, a.Name)
}

func (a UnixAddr) hasPath() bool {
	if a.Name == "" {
		return false
	}

	return runtime.GOOS != "linux" || a.Name[0] != '@'
}

func bindLocalEndpoint(t Transport, u *net.UnixAddr) (*Listener, error) {
	return UnixAddr(*u).Bind(t)
}

func connectLocalEndpoint(t Transport, u *net.UnixAddr) (*Stream, error) {
	return UnixAddr(*u).Connect(t)
}

// Path is a filesystem path for a local socket
type Path string

// Bind a local listener at the path
func (p Path) Bind(t Transport) (*Listener, error) {
	return t.listen(KindLocal, string(p))
}

// Connect to the local listener at the path
func (p Path) Connect(t Transport) (*Stream, error) {
	return t.dial(KindLocal, string(p))
}
