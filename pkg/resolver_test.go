package anysock

import (
	"net/netip"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextNetworkDispatch(t *testing.T) {
	for _, s := range []string{
		"127.0.0.1:80",
		"localhost:8080",
		"[::1]:443",
		"Unix:/tmp/sock", // prefix is case-sensitive
		" unix:/tmp/sock",
		"tcp:unix:/tmp/sock",
	} {
		t.Run(s, func(t *testing.T) {
			tp, tcpRec, unixRec := recordingTransport()

			_, err := Text(s).Bind(tp)
			assert.Equal(t, errRecorded, err)
			assert.Equal(t, "tcp", tcpRec.network)
			assert.Equal(t, s, tcpRec.address)

			_, err = Text(s).Connect(tp)
			assert.Equal(t, errRecorded, err)
			assert.Equal(t, s, tcpRec.address)

			assert.Equal(t, 2, tcpRec.calls)
			assert.Zero(t, unixRec.calls)
		})
	}
}

func TestStructuredDispatch(t *testing.T) {
	t.Run("IPAddr", func(t *testing.T) {
		tp, tcpRec, unixRec := recordingTransport()
		a := IPAddr(netip.MustParseAddrPort("[fe80::1]:9000"))

		_, err := tp.Bind(a)
		assert.Equal(t, errRecorded, err)
		assert.Equal(t, "[fe80::1]:9000", tcpRec.address)

		_, err = tp.Connect(a)
		assert.Equal(t, errRecorded, err)
		assert.Equal(t, 2, tcpRec.calls)
		assert.Zero(t, unixRec.calls)
	})

	t.Run("HostPort", func(t *testing.T) {
		tp, tcpRec, _ := recordingTransport()

		_, err := tp.Bind(HostPort{Host: "localhost", Port: 8080})
		assert.Equal(t, errRecorded, err)
		assert.Equal(t, "localhost:8080", tcpRec.address)

		_, err = tp.Connect(HostPort{Host: "::1", Port: 80})
		assert.Equal(t, errRecorded, err)
		assert.Equal(t, "[::1]:80", tcpRec.address)
	})

	t.Run("Addr", func(t *testing.T) {
		tp, tcpRec, unixRec := recordingTransport()
		a, err := ParseAddr("10.0.0.1:22")
		require.NoError(t, err)

		_, err = tp.Bind(a)
		assert.Equal(t, errRecorded, err)
		assert.Equal(t, "tcp", tcpRec.network)
		assert.Equal(t, "10.0.0.1:22", tcpRec.address)

		_, err = tp.Connect(a)
		assert.Equal(t, errRecorded, err)
		assert.Zero(t, unixRec.calls)
	})
}

func TestTCP(t *testing.T) {
	t.Run("EphemeralPort", func(t *testing.T) {
		l, err := Bind(HostPort{Host: "127.0.0.1"})
		require.NoError(t, err)
		defer l.Close()

		a, err := l.LocalAddr()
		require.NoError(t, err)

		port, ok := a.Port()
		assert.True(t, ok)
		assert.NotZero(t, port)
		assert.Equal(t, KindNetwork, l.Kind())
	})

	t.Run("AddrInUse", func(t *testing.T) {
		l, err := Bind(Text("127.0.0.1:0"))
		require.NoError(t, err)
		defer l.Close()

		a, err := l.LocalAddr()
		require.NoError(t, err)

		_, err = Bind(a)
		assert.ErrorIs(t, err, syscall.EADDRINUSE)
	})

	t.Run("ConnectionRefused", func(t *testing.T) {
		l, err := Bind(Text("127.0.0.1:0"))
		require.NoError(t, err)

		a, err := l.LocalAddr()
		require.NoError(t, err)
		require.NoError(t, l.Close())

		_, err = Connect(a)
		assert.ErrorIs(t, err, syscall.ECONNREFUSED)
	})

	t.Run("BadText", func(t *testing.T) {
		assert.NotPanics(t, func() {
			_, err := Bind(Text("no-port-here"))
			assert.Error(t, err)
		})
	})
}
