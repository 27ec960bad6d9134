package localsocket

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestToFsName_Classification(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("filesystem socket names map to pipes on Windows")
	}

	n, err := ToFsName("/tmp/test-classify.sock")
	require.NoError(t, err)

	assert.True(t, n.IsPath())
	assert.False(t, n.IsNamespaced())
	assert.Equal(t, "/tmp/test-classify.sock", n.String())
}

func TestToNsName_Classification(t *testing.T) {
	n, err := ToNsName("test-ns-classify")
	require.NoError(t, err)

	switch runtime.GOOS {
	case "linux":
		// Abstract namespace: no filesystem footprint.
		assert.False(t, n.IsPath())
		assert.True(t, n.IsNamespaced())
		assert.Equal(t, "@test-ns-classify", n.String())
	case "windows":
		// Named pipes are both an NT path and a kernel namespace.
		assert.True(t, n.IsPath())
		assert.True(t, n.IsNamespaced())
	default:
		// Pseudo-namespaced socket file: neither.
		assert.False(t, n.IsPath())
		assert.False(t, n.IsNamespaced())
	}
}

func TestName_ZeroValueIsBackendDefault(t *testing.T) {
	var n Name
	if runtime.GOOS == "windows" {
		assert.True(t, n.IsNamespaced())
	} else {
		assert.True(t, n.IsPath())
		assert.False(t, n.IsNamespaced())
	}
	assert.Equal(t, "", n.String())
}

func TestToFsName_RejectsNulByte(t *testing.T) {
	_, err := ToFsName("/tmp/bad\x00name.sock")
	require.ErrorIs(t, err, ErrNulByte)

	_, err = ToNsName("bad\x00name")
	require.ErrorIs(t, err, ErrNulByte)
}

func TestToFsName_RejectsOverlongPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no sun_path limit on Windows")
	}
	_, err := ToFsName("/tmp/" + strings.Repeat("x", 200) + ".sock")
	require.ErrorIs(t, err, ErrNameTooLong)
}

func TestName_BorrowAndIntoOwnedLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := rapid.StringMatching(`[a-zA-Z0-9._-]{1,40}`).Draw(t, "base")

		var n Name
		var err error
		if runtime.GOOS != "windows" && rapid.Bool().Draw(t, "fs") {
			n, err = ToFsName("/tmp/" + base)
		} else {
			n, err = ToNsName(base)
		}
		require.NoError(t, err)

		borrowed := n.Borrow()
		owned := borrowed.IntoOwned()
		twice := owned.IntoOwned()

		// Classification never changes across ownership conversion.
		assert.Equal(t, n.IsPath(), borrowed.IsPath())
		assert.Equal(t, n.IsNamespaced(), borrowed.IsNamespaced())
		assert.Equal(t, n.IsPath(), owned.IsPath())
		assert.Equal(t, n.IsNamespaced(), owned.IsNamespaced())

		// Borrow then IntoOwned round-trips by value.
		assert.True(t, owned.Equal(n))

		// IntoOwned is idempotent in content.
		assert.True(t, twice.Equal(owned))
	})
}
