package peercred

import (
	"errors"
	"net"
	"runtime"
)

var (
	// ErrNotImplemented is returned by Get on platforms without a
	// peer-credential socket option.
	ErrNotImplemented = errors.New("peercred: not implemented on " + runtime.GOOS)

	// ErrNotUnixConn is returned by Get when the connection is not a
	// Unix domain socket.
	ErrNotUnixConn = errors.New("peercred: not a unix domain socket connection")
)

// PeerInfo is the result of a live peer-credential query on a
// connection. PID is -1 where the platform does not report one.
type PeerInfo struct {
	PID int32
	UID uint32
	GID uint32
}

// Get queries the kernel for the credentials of the process on the
// other side of conn, using SO_PEERCRED on Linux and LOCAL_PEERCRED on
// macOS. On Windows, named-pipe access control is enforced by the pipe's
// security descriptor instead, and Get returns ErrNotImplemented.
func Get(conn net.Conn) (*PeerInfo, error) {
	return getPlatform(conn)
}
