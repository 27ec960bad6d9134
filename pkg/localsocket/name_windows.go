//go:build windows

package localsocket

import "strings"

const platformDefaultKind = kindNamedPipe

// ToNsName maps name into the platform's preferred namespace. On Windows
// every local socket is a named pipe, which is both a namespaced object
// (no cleanup required) and an NT path.
func ToNsName(name string) (Name, error) {
	raw := []byte(name)
	if err := checkNoNul(raw); err != nil {
		return Name{}, err
	}
	path := name
	if !strings.HasPrefix(path, `\\.\pipe\`) && !strings.HasPrefix(path, `//./pipe/`) {
		path = `\\.\pipe\` + path
	}
	return Name{kind: kindNamedPipe, raw: []byte(path), owned: true}, nil
}

// ToFsName wraps an explicit pipe path. Windows has no filesystem-backed
// local sockets; a full pipe path is accepted as-is.
func ToFsName(path string) (Name, error) {
	return ToNsName(path)
}
