//go:build freebsd || dragonfly

package peercred

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// FromControlMessage decodes a parsed control message carrying
// SCM_CREDS data. On this platform the kernel attaches struct cmsgcred.
func FromControlMessage(m unix.SocketControlMessage) (Creds, error) {
	if m.Header.Level != unix.SOL_SOCKET || m.Header.Type != unix.SCM_CREDS {
		return Creds{}, fmt.Errorf("peercred: control message is not SCM_CREDS (level=%d type=%d)",
			m.Header.Level, m.Header.Type)
	}
	return DecodeCmsgcred(m.Data)
}
