package unix

import (
	"context"
	"net"
	"testing"

	"github.com/lthibault/anysock/pkg/transport/generic"
	"github.com/stretchr/testify/assert"
)

type recorder struct{ network, address string }

func (r *recorder) Listen(_ context.Context, network, address string) (net.Listener, error) {
	r.network, r.address = network, address
	return nil, nil
}

func TestTransport(t *testing.T) {
	t.Run("InvalidNetwork", func(t *testing.T) {
		_, err := New().Listen("tcp", "127.0.0.1:0")
		assert.EqualError(t, err, "unix: invalid network tcp")

		_, err = New().Dial("unixgram", "/tmp/sock")
		assert.EqualError(t, err, "unix: invalid network unixgram")
	})

	t.Run("PathVerbatim", func(t *testing.T) {
		r := new(recorder)
		tp := New(OptGeneric(generic.OptListener(r)))

		_, err := tp.Listen("unix", " /tmp/a:b ")
		assert.NoError(t, err)
		assert.Equal(t, "unix", r.network)
		assert.Equal(t, " /tmp/a:b ", r.address)
	})
}
