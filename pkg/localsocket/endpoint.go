package localsocket

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Endpoint schemes give every Name one textual form, used by the CLI,
// config files and tests.
//
//	unix:///run/app.sock    filesystem-path socket
//	unix://@app             abstract-namespace socket (Linux)
//	npipe:////./pipe/app    Windows named pipe
const (
	schemeUnix  = "unix://"
	schemeNpipe = "npipe://"
)

// ParseEndpoint turns an endpoint string into a Name for the compiled
// backend. A scheme the current target cannot serve is an error.
func ParseEndpoint(endpoint string) (Name, error) {
	switch {
	case strings.HasPrefix(endpoint, schemeUnix):
		return parseUnixEndpoint(strings.TrimPrefix(endpoint, schemeUnix))
	case strings.HasPrefix(endpoint, schemeNpipe):
		return parseNpipeEndpoint(strings.TrimPrefix(endpoint, schemeNpipe))
	default:
		return Name{}, fmt.Errorf("unsupported endpoint scheme: %s (expected unix:// or npipe://)", endpoint)
	}
}

// FormatEndpoint renders a Name in endpoint form; the inverse of
// ParseEndpoint for names representable on this target.
//
// The endpoint form carries the socket address, not how the Name was
// constructed: a pseudo-namespaced name (ToNsName on a platform without
// a real namespace) formats as the unix:// path it resolved to and
// reparses as a filesystem-path name. Both denote the same socket file;
// only IsPath/IsNamespaced classification differs after the round trip.
func FormatEndpoint(n Name) string {
	if n.variant() == kindNamedPipe {
		return schemeNpipe + strings.ReplaceAll(n.String(), `\`, `/`)
	}
	return schemeUnix + n.String()
}

// IsLive probes whether name refers to a live listener, as opposed to a
// corpse socket left by a crashed previous owner. Create never probes on
// its own: an "address in use" bind failure may mean either, and the
// caller decides whether to probe and remove. The probe itself races
// with listener startup and shutdown, so a false result is a hint, not
// a guarantee.
func IsLive(name Name) bool {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	conn, err := DialContext(ctx, name)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
