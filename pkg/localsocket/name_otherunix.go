//go:build unix && !linux

package localsocket

import "errors"

// ToNsName maps name into the platform's preferred namespace. This
// target has no abstract socket namespace, so the name is emulated with
// a socket file under /tmp (a pseudo-namespaced address: classified as
// neither a path nor truly namespaced, and still reclaimed on close).
func ToNsName(name string) (Name, error) {
	return pseudoNsName(name)
}

func abstractFromEndpoint(string) (Name, error) {
	return Name{}, errors.New("localsocket: abstract namespace addresses require Linux")
}
