//go:build linux

package localsocket

// abstractNameMax is sun_path capacity minus the leading NUL that marks
// the abstract namespace.
const abstractNameMax = 107

// ToNsName maps name into the platform's preferred namespace. On Linux
// that is the abstract socket namespace: no filesystem footprint, nothing
// to reclaim.
func ToNsName(name string) (Name, error) {
	n, err := NamespacedBytes([]byte(name))
	if err != nil {
		return Name{}, err
	}
	// The string conversion above already produced a private copy.
	n.owned = true
	return n, nil
}

// NamespacedBytes wraps an arbitrary byte string as an abstract-namespace
// address. The Name borrows raw; call IntoOwned to detach it from the
// caller's buffer.
func NamespacedBytes(raw []byte) (Name, error) {
	if err := checkNoNul(raw); err != nil {
		return Name{}, err
	}
	if len(raw) > abstractNameMax {
		return Name{}, ErrNameTooLong
	}
	return Name{kind: kindAbstractNamespaced, raw: raw, owned: false}, nil
}

func abstractFromEndpoint(name string) (Name, error) {
	return ToNsName(name)
}
