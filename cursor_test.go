package checkbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_Wraps(t *testing.T) {
	var c Cursor
	got := make([]int, 7)
	for i := range got {
		got[i] = c.Next(3)
	}
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, got)
	assert.Equal(t, uint64(7), c.Position())
}

// Switching list length does not reset the count.
func TestCursor_SharedAcrossLengths(t *testing.T) {
	var c Cursor
	c.Next(10)
	c.Next(10)
	assert.Equal(t, 2, c.Next(5))
	assert.Equal(t, 3, c.Next(4))
}

func TestBlackhole_Counts(t *testing.T) {
	var b Blackhole
	for _, r := range []bool{true, false, true, true} {
		b.Consume(r)
	}
	assert.Equal(t, int64(4), b.Invocations())
	assert.Equal(t, int64(3), b.Hits())
}
