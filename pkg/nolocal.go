//go:build !unix || nolocal

package anysock

import "net"

// LocalSupported reports whether this build includes local transport
const LocalSupported = false

func cutLocal(string) (string, bool) { return "", false }

func localAddr(*net.UnixAddr) (Addr, error) { return Addr{}, errNoLocal }

func bindLocalEndpoint(Transport, *net.UnixAddr) (*Listener, error) {
	return nil, errNoLocal
}

func connectLocalEndpoint(Transport, *net.UnixAddr) (*Stream, error) {
	return nil, errNoLocal
}
