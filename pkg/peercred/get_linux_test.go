//go:build linux

package peercred

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_SelfConnection(t *testing.T) {
	path := filepath.Join("/tmp", fmt.Sprintf("peercred-%s.sock", uuid.NewString()[:8]))
	defer os.Remove(path)

	ln, err := net.Listen("unix", path)
	require.NoError(t, err)
	defer ln.Close()

	// connect() completes against the listen backlog without an accept.
	client, err := net.Dial("unix", path)
	require.NoError(t, err)
	defer client.Close()

	conn, err := ln.Accept()
	require.NoError(t, err)
	defer conn.Close()

	info, err := Get(conn)
	require.NoError(t, err)

	// The peer is this very process.
	assert.Equal(t, int32(os.Getpid()), info.PID)
	assert.Equal(t, uint32(os.Getuid()), info.UID)
	assert.Equal(t, uint32(os.Getgid()), info.GID)
}

func TestGet_RejectsNonUnixConn(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	client, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	defer client.Close()

	conn, err := ln.Accept()
	require.NoError(t, err)
	defer conn.Close()

	_, err = Get(conn)
	require.ErrorIs(t, err, ErrNotUnixConn)
}
