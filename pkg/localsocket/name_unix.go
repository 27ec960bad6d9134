//go:build !windows

package localsocket

import "path/filepath"

const platformDefaultKind = kindSocketPath

// sockaddrPathMax is the most conservative sun_path capacity across the
// supported Unix-likes (104 bytes on the BSDs and macOS, 108 on Linux),
// minus the trailing NUL.
const sockaddrPathMax = 103

// ToFsName validates path as a filesystem-backed Unix domain socket
// address and wraps it in a Name. The path must be free of interior NUL
// bytes and fit in sun_path.
func ToFsName(path string) (Name, error) {
	raw := []byte(path)
	if err := checkNoNul(raw); err != nil {
		return Name{}, err
	}
	if len(raw) > sockaddrPathMax {
		return Name{}, ErrNameTooLong
	}
	return Name{kind: kindSocketPath, raw: raw, owned: true}, nil
}

// pseudoNsName places name under the system temp directory, emulating a
// namespace on backends that have none. The resulting socket still has a
// filesystem footprint and is reclaimed like any path-backed socket.
func pseudoNsName(name string) (Name, error) {
	raw := []byte(name)
	if err := checkNoNul(raw); err != nil {
		return Name{}, err
	}
	// /tmp rather than os.TempDir(): per-user temp dirs on macOS routinely
	// blow the 104-byte sun_path limit.
	path := filepath.Join("/tmp", name)
	if len(path) > sockaddrPathMax {
		return Name{}, ErrNameTooLong
	}
	return Name{kind: kindPseudoNamespaced, raw: []byte(path), owned: true}, nil
}
