//go:build darwin

package peercred

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

func getPlatform(conn net.Conn) (*PeerInfo, error) {
	uc, ok := conn.(*net.UnixConn)
	if !ok {
		return nil, ErrNotUnixConn
	}

	raw, err := uc.SyscallConn()
	if err != nil {
		return nil, fmt.Errorf("peercred: syscall conn: %w", err)
	}

	var cred *unix.Xucred
	var pid int
	var credErr error
	if err := raw.Control(func(fd uintptr) {
		cred, credErr = unix.GetsockoptXucred(int(fd), unix.SOL_LOCAL, unix.LOCAL_PEERCRED)
		if credErr != nil {
			return
		}
		// LOCAL_PEERPID fills the gap: xucred carries no pid.
		pid, credErr = unix.GetsockoptInt(int(fd), unix.SOL_LOCAL, unix.LOCAL_PEERPID)
	}); err != nil {
		return nil, fmt.Errorf("peercred: control: %w", err)
	}
	if credErr != nil {
		return nil, fmt.Errorf("peercred: getsockopt LOCAL_PEERCRED: %w", credErr)
	}

	info := &PeerInfo{PID: int32(pid), UID: cred.Uid}
	if cred.Ngroups > 0 {
		info.GID = cred.Groups[0]
	}
	return info, nil
}
