package localsocket

import "net"

// Stream is one local socket connection. It embeds the backend's
// net.Conn: payload bytes are opaque to this package, and the backend's
// own concurrency guarantees apply (one reader and one writer may run
// concurrently on the two halves).
type Stream struct {
	net.Conn
}

type closeReader interface{ CloseRead() error }
type closeWriter interface{ CloseWrite() error }

// CloseRead shuts down the receiving half where the backend supports it
// (Unix domain sockets do; named pipes do not).
func (s *Stream) CloseRead() error {
	if cr, ok := s.Conn.(closeReader); ok {
		return cr.CloseRead()
	}
	return ErrHalfCloseUnsupported
}

// CloseWrite shuts down the sending half where the backend supports it.
func (s *Stream) CloseWrite() error {
	if cw, ok := s.Conn.(closeWriter); ok {
		return cw.CloseWrite()
	}
	return ErrHalfCloseUnsupported
}
