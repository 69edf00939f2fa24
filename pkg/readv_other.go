//go:build !linux

package anysock

import "net"

func readv(conn net.Conn, bufs [][]byte) (int, error) {
	return readFirst(conn, bufs)
}
