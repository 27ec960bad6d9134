package localsocket

import "errors"

var (
	// ErrNulByte is returned by the name constructors when the supplied
	// text or bytes contain an interior NUL, which no backend address
	// format permits.
	ErrNulByte = errors.New("localsocket: name contains an interior NUL byte")

	// ErrNameTooLong is returned when a name exceeds the compiled
	// backend's address length limit (sun_path for Unix domain sockets).
	ErrNameTooLong = errors.New("localsocket: name exceeds backend address length limit")

	// ErrListenerClosed is returned by Accept and AcceptContext after
	// Close has been called on the listener.
	ErrListenerClosed = errors.New("localsocket: listener closed")

	// ErrHalfCloseUnsupported is returned by Stream.CloseRead and
	// Stream.CloseWrite when the underlying backend connection does not
	// support shutting down one direction independently.
	ErrHalfCloseUnsupported = errors.New("localsocket: backend does not support half-close")
)
