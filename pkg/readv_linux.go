package anysock

import (
	"io"
	"net"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

func readv(conn net.Conn, bufs [][]byte) (int, error) {
	sc, ok := conn.(syscall.Conn)
	if !ok {
		return readFirst(conn, bufs)
	}

	rc, err := sc.SyscallConn()
	if err != nil {
		return 0, err
	}

	var n int
	var operr error
	if err = rc.Read(func(fd uintptr) bool {
		for {
			if n, operr = unix.Readv(int(fd), bufs); operr != unix.EINTR {
				break
			}
		}
		return operr != unix.EAGAIN
	}); err != nil {
		return 0, err
	}

	if operr != nil {
		return 0, os.NewSyscallError("readv", operr)
	}

	if n == 0 && !empty(bufs) {
		return 0, io.EOF
	}

	return n, nil
}

func empty(bufs [][]byte) bool {
	for _, b := range bufs {
		if len(b) > 0 {
			return false
		}
	}

	return true
}
