//go:build windows

package localsocket

import (
	"fmt"
	"strings"
)

func parseUnixEndpoint(string) (Name, error) {
	return Name{}, fmt.Errorf("unix domain sockets are not supported on Windows")
}

func parseNpipeEndpoint(rest string) (Name, error) {
	// npipe:////./pipe/name → //./pipe/name; bare names gain the prefix.
	pipePath := strings.TrimLeft(rest, "/")
	if strings.HasPrefix(pipePath, "./pipe/") {
		pipePath = "//" + pipePath
	}
	return ToNsName(pipePath)
}
