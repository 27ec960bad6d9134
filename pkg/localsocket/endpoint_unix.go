//go:build !windows

package localsocket

import "fmt"

func parseUnixEndpoint(rest string) (Name, error) {
	if rest == "" {
		return Name{}, fmt.Errorf("empty unix endpoint path")
	}
	if rest[0] == '@' {
		return abstractFromEndpoint(rest[1:])
	}
	return ToFsName(rest)
}

func parseNpipeEndpoint(string) (Name, error) {
	return Name{}, fmt.Errorf("named pipes are only supported on Windows")
}
