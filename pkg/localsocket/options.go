package localsocket

import (
	"io/fs"

	"go.uber.org/zap"
)

// ListenerOptions configures listener creation. Construct with
// NewListenerOptions to get the documented defaults; Create then binds
// the sole backend compiled for this target.
type ListenerOptions struct {
	// Name is the endpoint address to bind. Required.
	Name Name

	// DisableReclaim turns off the best-effort removal of a
	// filesystem-backed socket file when the listener is closed, so the
	// zero value keeps reclamation on. Removal is inherently racy against
	// another process binding the same path between close and unlink;
	// callers needing stronger guarantees set this and manage cleanup
	// themselves. Meaningless for namespaced addresses.
	DisableReclaim bool

	// SocketMode is applied to a filesystem-backed socket file after
	// bind. Zero leaves the umask-derived mode in place. Unix only.
	SocketMode fs.FileMode

	// SecurityDescriptor is passed through to the named pipe. Empty
	// means the go-winio default (current user only). Windows only.
	SecurityDescriptor string

	// InputBufferSize and OutputBufferSize size the pipe's kernel
	// buffers. Zero means 64 KiB. Windows only.
	InputBufferSize  int32
	OutputBufferSize int32

	// Logger receives diagnostic output. Nil means no logging.
	Logger *zap.Logger
}

// NewListenerOptions returns options bound to name with name reclamation
// enabled and a 0600 socket file mode.
func NewListenerOptions(name Name) *ListenerOptions {
	return &ListenerOptions{
		Name:       name,
		SocketMode: 0600,
	}
}

// Create selects the backend compiled for the current target and binds
// its native listener. Bind failures (address in use, permission denied)
// are surfaced verbatim; on a path-backed address, "address in use" may
// indicate either a live competing listener or a corpse socket left by a
// crashed previous owner — Create does not distinguish the two. See
// IsLive for an explicit probe.
func (o *ListenerOptions) Create() (*Listener, error) {
	opts := *o
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.InputBufferSize == 0 {
		opts.InputBufferSize = 65536
	}
	if opts.OutputBufferSize == 0 {
		opts.OutputBufferSize = 65536
	}
	return createListener(&opts)
}
