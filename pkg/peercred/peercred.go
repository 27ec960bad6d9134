// Package peercred extracts the identity of the process on the other
// side of a local IPC connection.
//
// Two facilities are provided. Creds decodes kernel-supplied SCM_CREDS
// ancillary data (the BSD cmsgcred and sockcred layouts) received
// alongside a Unix domain socket read; it is a borrowed, zero-copy view
// over the receive buffer. Get queries a live connection directly via
// the platform's peer-credential socket option (SO_PEERCRED on Linux,
// LOCAL_PEERCRED on macOS).
//
// Neither facility enables credential passing on the socket; that setup
// belongs to whoever owns the socket options.
package peercred

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortBuffer is returned by the decoders when the ancillary-data
// buffer is too small to hold the layout it claims to carry.
var ErrShortBuffer = errors.New("peercred: ancillary data shorter than credential structure")

type credLayout uint8

const (
	layoutCmsgcred credLayout = iota + 1
	layoutSockcred
)

// Creds is a decoded view over one ancillary-data buffer. It borrows
// the buffer: it must not outlive the receive result it came from, and
// the buffer must not be reused for another receive while the view (or
// a Groups cursor derived from it) is alive.
//
// Fields absent from the underlying layout report ok == false; an
// absent id is never conflated with a real id 0.
type Creds struct {
	data   []byte
	layout credLayout
}

// DecodeCmsgcred interprets data as a struct cmsgcred: credentials
// attached implicitly by FreeBSD-family kernels. The buffer must hold
// the full fixed-size structure.
func DecodeCmsgcred(data []byte) (Creds, error) {
	if len(data) < cmsgcredSize {
		return Creds{}, fmt.Errorf("%w: got %d bytes, cmsgcred needs %d", ErrShortBuffer, len(data), cmsgcredSize)
	}
	return Creds{data: data, layout: layoutCmsgcred}, nil
}

// DecodeSockcred interprets data as a struct sockcred: LOCAL_CREDS-style
// socket credentials with a variable-length trailing group array. The
// buffer must hold the base structure plus the number of groups it
// reports.
func DecodeSockcred(data []byte) (Creds, error) {
	if len(data) < sockcredSize {
		return Creds{}, fmt.Errorf("%w: got %d bytes, sockcred needs %d", ErrShortBuffer, len(data), sockcredSize)
	}
	n := int(int32(binary.NativeEndian.Uint32(data[scNgroupsOff:])))
	if n < 0 {
		return Creds{}, fmt.Errorf("peercred: sockcred reports negative group count %d", n)
	}
	if need := int(scGroupsOff) + n*gidSize; len(data) < need {
		return Creds{}, fmt.Errorf("%w: got %d bytes, sockcred with %d groups needs %d", ErrShortBuffer, len(data), n, need)
	}
	return Creds{data: data, layout: layoutSockcred}, nil
}

func (c Creds) u32(off uintptr) uint32 {
	return binary.NativeEndian.Uint32(c.data[off:])
}

// Pid returns the peer's process id. Present only for the cmsgcred
// layout; sockcred does not carry one.
func (c Creds) Pid() (int32, bool) {
	if c.layout != layoutCmsgcred {
		return 0, false
	}
	return int32(c.u32(cmcredPidOff)), true
}

// Ruid returns the peer's real user id. Present for both layouts.
func (c Creds) Ruid() (uint32, bool) {
	switch c.layout {
	case layoutCmsgcred:
		return c.u32(cmcredUidOff), true
	case layoutSockcred:
		return c.u32(scUidOff), true
	}
	return 0, false
}

// Euid returns the peer's effective user id. Present for both layouts.
func (c Creds) Euid() (uint32, bool) {
	switch c.layout {
	case layoutCmsgcred:
		return c.u32(cmcredEuidOff), true
	case layoutSockcred:
		return c.u32(scEuidOff), true
	}
	return 0, false
}

// Rgid returns the peer's real group id. Present for both layouts.
func (c Creds) Rgid() (uint32, bool) {
	switch c.layout {
	case layoutCmsgcred:
		return c.u32(cmcredGidOff), true
	case layoutSockcred:
		return c.u32(scGidOff), true
	}
	return 0, false
}

// Egid returns the peer's effective group id. Present only for the
// sockcred layout; cmsgcred does not carry one.
func (c Creds) Egid() (uint32, bool) {
	if c.layout != layoutSockcred {
		return 0, false
	}
	return c.u32(scEgidOff), true
}

// Groups returns a cursor over the peer's supplementary group ids,
// reading them in place from the credentials buffer. A cmsgcred count is
// clamped to the inline capacity (CMGROUP_MAX); a sockcred count was
// already validated against the buffer by DecodeSockcred.
func (c Creds) Groups() *Groups {
	var off uintptr
	var n int
	switch c.layout {
	case layoutCmsgcred:
		off = cmcredGroupsOff
		n = int(int16(binary.NativeEndian.Uint16(c.data[cmcredNgroupsOff:])))
		if n > credGroupMax {
			n = credGroupMax
		}
	case layoutSockcred:
		off = scGroupsOff
		n = int(int32(binary.NativeEndian.Uint32(c.data[scNgroupsOff:])))
	}
	if n < 0 {
		n = 0
	}
	return &Groups{data: c.data, cur: int(off), end: int(off) + n*gidSize}
}
