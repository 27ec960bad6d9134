package peercred

import "unsafe"

// Mirror definitions of the two kernel credential structures delivered
// as SCM_CREDS ancillary data on the BSDs. Field order, widths and
// padding must match the system headers bit for bit: decoding is a
// reinterpretation of the kernel's bytes at these offsets, not a
// field-by-field parse. The size assertions below are a necessary (not
// sufficient) check that the mirrors have not drifted.

// credGroupMax is CMGROUP_MAX, the inline supplementary-group capacity
// of cmsgcred.
const credGroupMax = 16

// cmsgcred mirrors struct cmsgcred (FreeBSD/DragonFly sys/socket.h):
// credentials attached implicitly by the kernel. Carries a pid but no
// effective gid.
type cmsgcred struct {
	Pid     int32
	Uid     uint32
	Euid    uint32
	Gid     uint32
	Ngroups int16
	_       int16
	Groups  [credGroupMax]uint32
}

// sockcred mirrors struct sockcred (LOCAL_CREDS-style socket
// credentials): carries an effective gid but no pid, with a
// variable-length trailing group array of which one element is inline.
type sockcred struct {
	Uid     uint32
	Euid    uint32
	Gid     uint32
	Egid    uint32
	Ngroups int32
	Groups  [1]uint32
}

const (
	cmsgcredSize = 84
	sockcredSize = 24
	gidSize      = int(unsafe.Sizeof(uint32(0)))
)

var (
	_ [cmsgcredSize - unsafe.Sizeof(cmsgcred{})]byte
	_ [unsafe.Sizeof(cmsgcred{}) - cmsgcredSize]byte
	_ [sockcredSize - unsafe.Sizeof(sockcred{})]byte
	_ [unsafe.Sizeof(sockcred{}) - sockcredSize]byte
)

var (
	cmsgcredV cmsgcred
	sockcredV sockcred
)

const (
	cmcredPidOff     = unsafe.Offsetof(cmsgcredV.Pid)
	cmcredUidOff     = unsafe.Offsetof(cmsgcredV.Uid)
	cmcredEuidOff    = unsafe.Offsetof(cmsgcredV.Euid)
	cmcredGidOff     = unsafe.Offsetof(cmsgcredV.Gid)
	cmcredNgroupsOff = unsafe.Offsetof(cmsgcredV.Ngroups)
	cmcredGroupsOff  = unsafe.Offsetof(cmsgcredV.Groups)

	scUidOff     = unsafe.Offsetof(sockcredV.Uid)
	scEuidOff    = unsafe.Offsetof(sockcredV.Euid)
	scGidOff     = unsafe.Offsetof(sockcredV.Gid)
	scEgidOff    = unsafe.Offsetof(sockcredV.Egid)
	scNgroupsOff = unsafe.Offsetof(sockcredV.Ngroups)
	scGroupsOff  = unsafe.Offsetof(sockcredV.Groups)
)
