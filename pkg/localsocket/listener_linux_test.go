//go:build linux

package localsocket

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListener_AbstractNamespace(t *testing.T) {
	name, err := ToNsName(fmt.Sprintf("lipc-abstract-%s", uuid.NewString()[:8]))
	require.NoError(t, err)
	require.True(t, name.IsNamespaced())

	ln, err := NewListenerOptions(name).Create()
	require.NoError(t, err)
	defer ln.Close()

	// No filesystem footprint anywhere.
	_, err = os.Stat(name.String())
	assert.Error(t, err)

	go func() {
		if conn, err := Dial(name); err == nil {
			conn.Write([]byte("abstract"))
			conn.Close()
		}
	}()

	stream, err := ln.Accept()
	require.NoError(t, err)
	defer stream.Close()

	buf := make([]byte, 8)
	require.NoError(t, stream.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, err = stream.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "abstract", string(buf))
}

func TestListener_AbstractReclaimIsNoop(t *testing.T) {
	name, err := ToNsName(fmt.Sprintf("lipc-noreclaim-%s", uuid.NewString()[:8]))
	require.NoError(t, err)

	ln, err := NewListenerOptions(name).Create()
	require.NoError(t, err)

	// Must not panic or touch the filesystem.
	ln.DoNotReclaimNameOnDrop()
	require.NoError(t, ln.Close())
}
