//go:build !windows

package localsocket

import (
	"context"
	"fmt"
	"net"
)

func dialBackend(ctx context.Context, name Name) (net.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", sockaddrString(name))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", name, err)
	}
	return conn, nil
}
