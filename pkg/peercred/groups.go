package peercred

import "encoding/binary"

// Groups is a bounded cursor over the supplementary group-id array
// embedded in a credentials buffer. It borrows the same buffer as the
// Creds it came from and copies nothing; cur and end delimit the
// remaining elements, with end one past the last valid one.
type Groups struct {
	data     []byte
	cur, end int
}

// Next returns the next group id, or ok == false once the cursor is
// exhausted. An exhausted cursor stays exhausted.
func (g *Groups) Next() (gid uint32, ok bool) {
	if g.cur >= g.end {
		return 0, false
	}
	gid = binary.NativeEndian.Uint32(g.data[g.cur:])
	g.cur += gidSize
	return gid, true
}

// Len reports the exact number of group ids not yet consumed.
func (g *Groups) Len() int {
	return (g.end - g.cur) / gidSize
}
