// Package localsocket provides a cross-platform local IPC transport:
// one addressing model and one listener/stream surface over Unix domain
// sockets (filesystem-path, pseudo-namespaced and Linux abstract-namespace)
// and Windows named pipes.
//
// Exactly one backend is compiled in per target. On Unix-like targets the
// backend is Unix domain sockets; on Windows it is named pipes via
// github.com/Microsoft/go-winio. There is no runtime switching between
// backends.
package localsocket

import "bytes"

// nameKind discriminates the backend-specific representations of a Name.
// Only the kinds valid for the compiled target are ever constructed; the
// zero value stands for the backend-appropriate empty name.
type nameKind uint8

const (
	kindDefault nameKind = iota
	kindNamedPipe
	kindSocketPath
	kindPseudoNamespaced
	kindAbstractNamespaced
)

// Name identifies a local socket endpoint in a backend-aware way.
//
// A Name is immutable after construction. It either owns its backing
// bytes or borrows them from the value it was derived from; Borrow and
// IntoOwned convert between the two without changing what the name
// denotes. The zero Name is the empty name of the compiled backend.
type Name struct {
	kind  nameKind
	raw   []byte
	owned bool
}

// variant resolves the zero value to the platform's default kind so the
// classification queries are total.
func (n Name) variant() nameKind {
	if n.kind == kindDefault {
		return platformDefaultKind
	}
	return n.kind
}

// IsPath reports whether the name denotes a filesystem object.
// True for filesystem-path sockets and for named pipes (whose names are
// NT object paths); false for pseudo-namespaced and abstract addresses.
func (n Name) IsPath() bool {
	switch n.variant() {
	case kindNamedPipe, kindSocketPath:
		return true
	default:
		return false
	}
}

// IsNamespaced reports whether the name lives in a kernel namespace with
// no filesystem footprint to clean up. True for named pipes and abstract
// addresses; false for filesystem-path and pseudo-namespaced sockets,
// both of which leave a socket file behind.
func (n Name) IsNamespaced() bool {
	switch n.variant() {
	case kindNamedPipe, kindAbstractNamespaced:
		return true
	default:
		return false
	}
}

// Borrow returns a Name sharing this name's backing bytes. The result is
// valid only as long as the bytes it was borrowed from; it never
// allocates.
func (n Name) Borrow() Name {
	return Name{kind: n.kind, raw: n.raw, owned: false}
}

// IntoOwned detaches the name from any borrowed backing storage. If the
// name already owns its bytes this is a no-op; otherwise the bytes are
// copied once. Applying IntoOwned twice changes nothing further.
func (n Name) IntoOwned() Name {
	if n.owned || n.raw == nil {
		return Name{kind: n.kind, raw: n.raw, owned: true}
	}
	buf := make([]byte, len(n.raw))
	copy(buf, n.raw)
	return Name{kind: n.kind, raw: buf, owned: true}
}

// Equal reports value equality: same variant, same bytes. Ownership does
// not participate in equality.
func (n Name) Equal(other Name) bool {
	return n.variant() == other.variant() && bytes.Equal(n.raw, other.raw)
}

// String renders the name for display and for passing to the backend.
// Abstract addresses are shown with the conventional "@" prefix.
func (n Name) String() string {
	if n.variant() == kindAbstractNamespaced {
		return "@" + string(n.raw)
	}
	return string(n.raw)
}

// checkNoNul rejects interior NUL bytes, which no backend's address
// representation permits.
func checkNoNul(raw []byte) error {
	if bytes.IndexByte(raw, 0) >= 0 {
		return ErrNulByte
	}
	return nil
}
