package tcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckNetwork(t *testing.T) {
	for _, n := range []string{"tcp", "tcp4", "tcp6"} {
		assert.True(t, checkNetwork(n), n)
	}

	for _, n := range []string{"unix", "udp", "TCP", ""} {
		assert.False(t, checkNetwork(n), n)
	}
}

func TestTransport(t *testing.T) {
	tp := New()

	t.Run("InvalidNetwork", func(t *testing.T) {
		_, err := tp.Listen("unix", "/tmp/sock")
		assert.EqualError(t, err, "tcp: invalid network unix")

		_, err = tp.Dial("udp", "127.0.0.1:53")
		assert.EqualError(t, err, "tcp: invalid network udp")
	})

	t.Run("Loopback", func(t *testing.T) {
		l, err := tp.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer l.Close()

		conn, err := tp.Dial("tcp", l.Addr().String())
		require.NoError(t, err)
		assert.NoError(t, conn.Close())
	})
}
