//go:build !unix

package anysock

import (
	"net"
	"os"

	"github.com/pkg/errors"
)

func peername(conn net.Conn) (Addr, error) {
	return FromNetAddr(conn.RemoteAddr())
}

func sockname(_ interface{}, addr func() net.Addr) (Addr, error) {
	return FromNetAddr(addr())
}

func shutdownBoth(conn net.Conn) error { return closeBoth(conn) }

func dup(conn net.Conn) (net.Conn, error) {
	fc, ok := conn.(interface{ File() (*os.File, error) })
	if !ok {
		return nil, errors.Errorf("clone: unsupported connection %T", conn)
	}

	f, err := fc.File()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return net.FileConn(f)
}
