package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reference values come from java.util.Random(42).
func TestSource_MatchesJavaRandom(t *testing.T) {
	t.Run("nextInt()", func(t *testing.T) {
		rnd := NewSource(42)
		assert.Equal(t, int32(-1170105035), rnd.Int())
		assert.Equal(t, int32(234785527), rnd.Int())
	})

	t.Run("nextInt(10)", func(t *testing.T) {
		rnd := NewSource(42)
		got := make([]int32, 5)
		for i := range got {
			got[i] = rnd.Intn(10)
		}
		assert.Equal(t, []int32{0, 3, 8, 4, 0}, got)
	})

	t.Run("nextInt(1000000)", func(t *testing.T) {
		rnd := NewSource(42)
		assert.Equal(t, int32(431130), rnd.Intn(1000000))
		assert.Equal(t, int32(392763), rnd.Intn(1000000))
		assert.Equal(t, int32(211248), rnd.Intn(1000000))
	})
}

func TestSource_IntnRange(t *testing.T) {
	rnd := NewSource(7)
	for _, bound := range []int32{1, 2, 3, 8, 26, 1000, 1 << 30} {
		for i := 0; i < 1000; i++ {
			v := rnd.Intn(bound)
			if v < 0 || v >= bound {
				t.Fatalf("Intn(%d) = %d, out of range", bound, v)
			}
		}
	}
}

func TestSource_IntnPanicsOnNonPositiveBound(t *testing.T) {
	rnd := NewSource(1)
	assert.Panics(t, func() { rnd.Intn(0) })
	assert.Panics(t, func() { rnd.Intn(-5) })
}

func TestSource_SameSeedSameSequence(t *testing.T) {
	a, b := NewSource(99), NewSource(99)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}
