package anysock

import (
	"fmt"
	"io"
	"net"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Shutdown selects which direction(s) of a Stream to shut down
type Shutdown uint8

const (
	// ShutdownRead disables further reads
	ShutdownRead Shutdown = iota
	// ShutdownWrite disables further writes.  The peer reads EOF.
	ShutdownWrite
	// ShutdownBoth disables reads and writes
	ShutdownBoth
)

func (how Shutdown) String() string {
	switch how {
	case ShutdownRead:
		return "read"
	case ShutdownWrite:
		return "write"
	case ShutdownBoth:
		return "both"
	}

	return "invalid"
}

type closeReader interface{ CloseRead() error }
type closeWriter interface{ CloseWrite() error }

var _ io.ReadWriteCloser = (*Stream)(nil)

// Stream is a connected TCP or Unix socket.  Every method delegates to the
// underlying connection; blocking calls block the calling goroutine.
type Stream struct {
	kind Kind
	conn net.Conn
}

// Kind of transport
func (s *Stream) Kind() Kind { return s.kind }

// Read up to len(b) bytes
func (s *Stream) Read(b []byte) (int, error) { return s.conn.Read(b) }

// ReadVectored fills bufs in order with a single read
func (s *Stream) ReadVectored(bufs [][]byte) (int, error) {
	return readv(s.conn, bufs)
}

// ReadToEnd reads until EOF
func (s *Stream) ReadToEnd() ([]byte, error) { return io.ReadAll(s.conn) }

// ReadToString reads until EOF.  The data must be valid UTF-8.
func (s *Stream) ReadToString() (string, error) {
	b, err := s.ReadToEnd()
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", errors.New("stream did not contain valid UTF-8")
	}

	return string(b), nil
}

// ReadExact fills b, or fails with io.ErrUnexpectedEOF if the stream ends
// first.
func (s *Stream) ReadExact(b []byte) error {
	_, err := io.ReadFull(s.conn, b)
	return err
}

// Write b
func (s *Stream) Write(b []byte) (int, error) { return s.conn.Write(b) }

// WriteVectored writes every buffer, using writev(2) where available
func (s *Stream) WriteVectored(bufs [][]byte) (int64, error) {
	// WriteTo consumes the slice it is called on
	b := make(net.Buffers, len(bufs))
	copy(b, bufs)
	return b.WriteTo(s.conn)
}

// WriteAll writes b in full
func (s *Stream) WriteAll(b []byte) error {
	for len(b) > 0 {
		n, err := s.conn.Write(b)
		if err != nil {
			return err
		}

		if n == 0 {
			return io.ErrShortWrite
		}

		b = b[n:]
	}

	return nil
}

// Printf writes formatted output
func (s *Stream) Printf(format string, args ...interface{}) (int, error) {
	return fmt.Fprintf(s.conn, format, args...)
}

// Flush is forwarded to the connection if it buffers writes.  Sockets do
// not, so this is usually a no-op.
func (s *Stream) Flush() error {
	if f, ok := s.conn.(interface{ Flush() error }); ok {
		return f.Flush()
	}

	return nil
}

// Shutdown the read side, the write side or both, without releasing the
// socket.
func (s *Stream) Shutdown(how Shutdown) error {
	switch how {
	case ShutdownRead:
		if r, ok := s.conn.(closeReader); ok {
			return r.CloseRead()
		}
	case ShutdownWrite:
		if w, ok := s.conn.(closeWriter); ok {
			return w.CloseWrite()
		}
	case ShutdownBoth:
		return shutdownBoth(s.conn)
	default:
		return errors.Errorf("shutdown: invalid direction %d", how)
	}

	return errors.Errorf("shutdown: unsupported connection %T", s.conn)
}

// closeBoth shuts down each direction in turn
func closeBoth(conn net.Conn) error {
	r, rok := conn.(closeReader)
	w, wok := conn.(closeWriter)
	if !rok || !wok {
		return errors.Errorf("shutdown: unsupported connection %T", conn)
	}

	if err := r.CloseRead(); err != nil {
		return err
	}
	return w.CloseWrite()
}

// TryClone duplicates the socket descriptor.  Both Streams refer to the same
// connection and must each be closed.
func (s *Stream) TryClone() (*Stream, error) {
	conn, err := dup(s.conn)
	if err != nil {
		return nil, err
	}

	return &Stream{kind: s.kind, conn: conn}, nil
}

// PeerAddr queries the OS for the remote address
func (s *Stream) PeerAddr() (Addr, error) { return peername(s.conn) }

// LocalAddr queries the OS for the local address
func (s *Stream) LocalAddr() (Addr, error) {
	return sockname(s.conn, s.conn.LocalAddr)
}

// Close releases this Stream's descriptor.  Clones remain open.
func (s *Stream) Close() error { return s.conn.Close() }

// readFirst reads into the first non-empty buffer
func readFirst(r io.Reader, bufs [][]byte) (int, error) {
	for _, b := range bufs {
		if len(b) > 0 {
			return r.Read(b)
		}
	}

	return 0, nil
}
