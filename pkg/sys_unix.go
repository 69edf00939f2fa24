//go:build unix

package anysock

import (
	"net"
	"net/netip"
	"os"
	"runtime"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func peername(conn net.Conn) (Addr, error) {
	return query(conn, "getpeername", unix.Getpeername, conn.RemoteAddr)
}

func sockname(v interface{}, fallback func() net.Addr) (Addr, error) {
	return query(v, "getsockname", unix.Getsockname, fallback)
}

// query asks the kernel rather than trusting the address cached by the net
// package.  Values that do not expose a descriptor use the fallback.
func query(v interface{}, name string, get func(int) (unix.Sockaddr, error), fallback func() net.Addr) (Addr, error) {
	sc, ok := v.(syscall.Conn)
	if !ok {
		return FromNetAddr(fallback())
	}

	rc, err := sc.SyscallConn()
	if err != nil {
		return Addr{}, err
	}

	var sa unix.Sockaddr
	var operr error
	if err = rc.Control(func(fd uintptr) {
		sa, operr = get(int(fd))
	}); err != nil {
		return Addr{}, err
	}

	if operr != nil {
		return Addr{}, os.NewSyscallError(name, operr)
	}

	return fromSockaddr(sa)
}

func fromSockaddr(sa unix.Sockaddr) (Addr, error) {
	switch v := sa.(type) {
	case *unix.SockaddrInet4:
		return networkAddr(netip.AddrPortFrom(netip.AddrFrom4(v.Addr), uint16(v.Port)))

	case *unix.SockaddrInet6:
		ip := netip.AddrFrom16(v.Addr)
		if v.ZoneId != 0 {
			ip = ip.WithZone(zoneName(v.ZoneId))
		}
		return networkAddr(netip.AddrPortFrom(ip, uint16(v.Port)))

	case *unix.SockaddrUnix:
		name := v.Name
		if name == "@" && runtime.GOOS == "linux" { // unbound peers read back as an empty abstract name on linux
			name = ""
		}
		return localAddr(&net.UnixAddr{Name: name, Net: "unix"})
	}

	return Addr{}, errors.Errorf("unsupported socket address %T", sa)
}

func zoneName(idx uint32) string {
	if ifi, err := net.InterfaceByIndex(int(idx)); err == nil {
		return ifi.Name
	}

	return strconv.FormatUint(uint64(idx), 10)
}

// shutdownBoth issues a single shutdown(2) with SHUT_RDWR
func shutdownBoth(conn net.Conn) error {
	sc, ok := conn.(syscall.Conn)
	if !ok {
		return closeBoth(conn)
	}

	rc, err := sc.SyscallConn()
	if err != nil {
		return err
	}

	var operr error
	if err = rc.Control(func(fd uintptr) {
		operr = unix.Shutdown(int(fd), unix.SHUT_RDWR)
	}); err != nil {
		return err
	}

	return os.NewSyscallError("shutdown", operr)
}

// dup the descriptor with dup(2) and hand the copy to the net package.
func dup(conn net.Conn) (net.Conn, error) {
	sc, ok := conn.(syscall.Conn)
	if !ok {
		return nil, errors.Errorf("clone: unsupported connection %T", conn)
	}

	rc, err := sc.SyscallConn()
	if err != nil {
		return nil, err
	}

	var fd int
	var operr error
	if err = rc.Control(func(s uintptr) {
		if fd, operr = unix.Dup(int(s)); operr == nil {
			unix.CloseOnExec(fd)
		}
	}); err != nil {
		return nil, err
	}

	if operr != nil {
		return nil, os.NewSyscallError("dup", operr)
	}

	f := os.NewFile(uintptr(fd), "")
	defer f.Close()

	return net.FileConn(f)
}
