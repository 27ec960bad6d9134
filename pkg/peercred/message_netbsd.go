//go:build netbsd

package peercred

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// FromControlMessage decodes a parsed control message carrying
// SCM_CREDS data. On this platform LOCAL_CREDS makes the kernel attach
// struct sockcred.
func FromControlMessage(m unix.SocketControlMessage) (Creds, error) {
	if m.Header.Level != unix.SOL_SOCKET || m.Header.Type != unix.SCM_CREDS {
		return Creds{}, fmt.Errorf("peercred: control message is not SCM_CREDS (level=%d type=%d)",
			m.Header.Level, m.Header.Type)
	}
	return DecodeSockcred(m.Data)
}
