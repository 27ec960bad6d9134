//go:build windows

package localsocket

import (
	"fmt"
	"net"

	"github.com/Microsoft/go-winio"
	"go.uber.org/zap"
)

// createListener binds a named pipe for the given options. This is the
// sole backend on Windows.
func createListener(opts *ListenerOptions) (*Listener, error) {
	pipePath := opts.Name.String()
	opts.Logger.Debug("creating named pipe", zap.String("pipe", pipePath))

	config := &winio.PipeConfig{
		// Empty means current user only (go-winio default).
		SecurityDescriptor: opts.SecurityDescriptor,
		MessageMode:        false,
		InputBufferSize:    opts.InputBufferSize,
		OutputBufferSize:   opts.OutputBufferSize,
	}

	ln, err := winio.ListenPipe(pipePath, config)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", opts.Name, err)
	}

	return newListener(ln, opts), nil
}

// disableReclaim is a no-op: named pipes vanish with their last handle
// and leave nothing to unlink.
func disableReclaim(_ net.Listener) {}
