//go:build windows

package localsocket

import (
	"context"
	"fmt"
	"net"

	"github.com/Microsoft/go-winio"
)

func dialBackend(ctx context.Context, name Name) (net.Conn, error) {
	conn, err := winio.DialPipeContext(ctx, name.String())
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", name, err)
	}
	return conn, nil
}
