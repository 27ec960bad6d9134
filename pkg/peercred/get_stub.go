//go:build !linux && !darwin

package peercred

import "net"

func getPlatform(net.Conn) (*PeerInfo, error) {
	return nil, ErrNotImplemented
}
