package peercred

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeCmsgcred builds a wire-format cmsgcred buffer with the given
// fields, leaving unset inline group slots zeroed.
func makeCmsgcred(pid int32, uid, euid, gid uint32, ngroups int16, groups ...uint32) []byte {
	buf := make([]byte, cmsgcredSize)
	binary.NativeEndian.PutUint32(buf[cmcredPidOff:], uint32(pid))
	binary.NativeEndian.PutUint32(buf[cmcredUidOff:], uid)
	binary.NativeEndian.PutUint32(buf[cmcredEuidOff:], euid)
	binary.NativeEndian.PutUint32(buf[cmcredGidOff:], gid)
	binary.NativeEndian.PutUint16(buf[cmcredNgroupsOff:], uint16(ngroups))
	for i, g := range groups {
		binary.NativeEndian.PutUint32(buf[int(cmcredGroupsOff)+i*gidSize:], g)
	}
	return buf
}

// makeSockcred builds a wire-format sockcred buffer sized for its
// trailing group array.
func makeSockcred(uid, euid, gid, egid uint32, groups ...uint32) []byte {
	n := len(groups)
	size := int(scGroupsOff) + n*gidSize
	if size < sockcredSize {
		size = sockcredSize
	}
	buf := make([]byte, size)
	binary.NativeEndian.PutUint32(buf[scUidOff:], uid)
	binary.NativeEndian.PutUint32(buf[scEuidOff:], euid)
	binary.NativeEndian.PutUint32(buf[scGidOff:], gid)
	binary.NativeEndian.PutUint32(buf[scEgidOff:], egid)
	binary.NativeEndian.PutUint32(buf[scNgroupsOff:], uint32(int32(n)))
	for i, g := range groups {
		binary.NativeEndian.PutUint32(buf[int(scGroupsOff)+i*gidSize:], g)
	}
	return buf
}

func TestCmsgcred_AccessorPresence(t *testing.T) {
	c, err := DecodeCmsgcred(makeCmsgcred(4321, 1000, 1001, 2000, 0))
	require.NoError(t, err)

	pid, ok := c.Pid()
	require.True(t, ok, "cmsgcred carries a pid")
	assert.Equal(t, int32(4321), pid)

	ruid, ok := c.Ruid()
	require.True(t, ok)
	assert.Equal(t, uint32(1000), ruid)

	euid, ok := c.Euid()
	require.True(t, ok)
	assert.Equal(t, uint32(1001), euid)

	rgid, ok := c.Rgid()
	require.True(t, ok)
	assert.Equal(t, uint32(2000), rgid)

	egid, ok := c.Egid()
	assert.False(t, ok, "cmsgcred has no effective gid")
	assert.Equal(t, uint32(0), egid)
}

func TestSockcred_AccessorPresence(t *testing.T) {
	c, err := DecodeSockcred(makeSockcred(1000, 1001, 2000, 2001))
	require.NoError(t, err)

	_, ok := c.Pid()
	assert.False(t, ok, "sockcred has no pid")

	ruid, ok := c.Ruid()
	require.True(t, ok)
	assert.Equal(t, uint32(1000), ruid)

	euid, ok := c.Euid()
	require.True(t, ok)
	assert.Equal(t, uint32(1001), euid)

	rgid, ok := c.Rgid()
	require.True(t, ok)
	assert.Equal(t, uint32(2000), rgid)

	egid, ok := c.Egid()
	require.True(t, ok, "sockcred carries an effective gid")
	assert.Equal(t, uint32(2001), egid)
}

func TestGroups_Sequence(t *testing.T) {
	c, err := DecodeCmsgcred(makeCmsgcred(1, 0, 0, 0, 3, 100, 200, 300))
	require.NoError(t, err)

	g := c.Groups()
	assert.Equal(t, 3, g.Len())

	want := []uint32{100, 200, 300}
	for i, w := range want {
		gid, ok := g.Next()
		require.True(t, ok)
		assert.Equal(t, w, gid)
		assert.Equal(t, len(want)-i-1, g.Len())
	}

	// Exhausted stays exhausted, even polled again.
	for i := 0; i < 3; i++ {
		_, ok := g.Next()
		assert.False(t, ok)
		assert.Equal(t, 0, g.Len())
	}
}

func TestGroups_ClampsOversizedCount(t *testing.T) {
	// A count beyond the inline capacity must never read past the
	// inline array.
	c, err := DecodeCmsgcred(makeCmsgcred(1, 0, 0, 0, 40))
	require.NoError(t, err)

	g := c.Groups()
	assert.Equal(t, credGroupMax, g.Len())

	seen := 0
	for {
		if _, ok := g.Next(); !ok {
			break
		}
		seen++
	}
	assert.Equal(t, credGroupMax, seen)
}

func TestGroups_NegativeCountYieldsNothing(t *testing.T) {
	c, err := DecodeCmsgcred(makeCmsgcred(1, 0, 0, 0, -1))
	require.NoError(t, err)

	g := c.Groups()
	assert.Equal(t, 0, g.Len())
	_, ok := g.Next()
	assert.False(t, ok)
}

func TestSockcred_VariableGroups(t *testing.T) {
	c, err := DecodeSockcred(makeSockcred(0, 0, 0, 0, 7, 8, 9, 10, 11))
	require.NoError(t, err)

	g := c.Groups()
	require.Equal(t, 5, g.Len())

	var got []uint32
	for {
		gid, ok := g.Next()
		if !ok {
			break
		}
		got = append(got, gid)
	}
	assert.Equal(t, []uint32{7, 8, 9, 10, 11}, got)
}

func TestDecode_ShortBuffer(t *testing.T) {
	_, err := DecodeCmsgcred(make([]byte, cmsgcredSize-1))
	require.ErrorIs(t, err, ErrShortBuffer)

	_, err = DecodeSockcred(make([]byte, sockcredSize-1))
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestDecodeSockcred_CountBeyondBuffer(t *testing.T) {
	// The base structure is present but the reported group count points
	// past the end of the buffer.
	buf := makeSockcred(0, 0, 0, 0)
	binary.NativeEndian.PutUint32(buf[scNgroupsOff:], 50)

	_, err := DecodeSockcred(buf)
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestDecodeSockcred_NegativeCount(t *testing.T) {
	buf := makeSockcred(0, 0, 0, 0)
	binary.NativeEndian.PutUint32(buf[scNgroupsOff:], uint32(0xFFFFFFFF)) // -1

	_, err := DecodeSockcred(buf)
	require.Error(t, err)
}
