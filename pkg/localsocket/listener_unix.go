//go:build !windows

package localsocket

import (
	"fmt"
	"net"
	"os"

	"go.uber.org/zap"
)

// createListener binds a Unix domain socket for the given options. This
// is the sole backend on Unix-like targets.
func createListener(opts *ListenerOptions) (*Listener, error) {
	addr := sockaddrString(opts.Name)
	opts.Logger.Debug("binding unix domain socket", zap.String("addr", addr))

	ln, err := net.Listen("unix", addr)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", opts.Name, err)
	}

	// Namespaced addresses have no file to secure or reclaim.
	if !opts.Name.IsNamespaced() {
		if opts.SocketMode != 0 {
			if err := os.Chmod(addr, opts.SocketMode); err != nil {
				ln.Close()
				return nil, fmt.Errorf("chmod socket %s: %w", addr, err)
			}
		}
		if opts.DisableReclaim {
			disableReclaim(ln)
		}
	}

	return newListener(ln, opts), nil
}

// sockaddrString renders a Name in the form net.Listen("unix", ...)
// expects: the path itself, or "@"-prefixed bytes for the abstract
// namespace.
func sockaddrString(n Name) string {
	return n.String()
}

// disableReclaim turns off the net package's unlink-on-close behavior
// for a path-backed socket.
func disableReclaim(ln net.Listener) {
	if ul, ok := ln.(*net.UnixListener); ok {
		ul.SetUnlinkOnClose(false)
	}
}
