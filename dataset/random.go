package dataset

// Source is the 48-bit linear congruential generator used by java.util.Random.
//
// Corpora drawn from it are identical, element for element, to the ones the
// JMH harness builds from new Random(seed), so timings taken by either
// implementation refer to the same inputs.
//
// A Source is not safe for concurrent use.
type Source struct {
	seed int64
}

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = (1 << 48) - 1
)

// NewSource returns a generator seeded exactly like java.util.Random(seed).
func NewSource(seed int64) *Source {
	return &Source{seed: (seed ^ lcgMultiplier) & lcgMask}
}

// next advances the state and returns the top bits of it.
func (s *Source) next(bits uint) int32 {
	s.seed = (s.seed*lcgMultiplier + lcgAddend) & lcgMask
	return int32(s.seed >> (48 - bits))
}

// Int returns a uniformly distributed int32 (Random.nextInt()).
func (s *Source) Int() int32 {
	return s.next(32)
}

// Intn returns a uniformly distributed value in [0, bound) (Random.nextInt(bound)).
// It panics if bound is not positive.
func (s *Source) Intn(bound int32) int32 {
	if bound <= 0 {
		panic("dataset: bound must be positive")
	}

	r := s.next(31)
	m := bound - 1
	if bound&m == 0 {
		return int32((int64(bound) * int64(r)) >> 31)
	}

	// Reject draws from the incomplete last bucket; u-r+m wraps negative for them.
	for u := r; ; u = s.next(31) {
		r = u % bound
		if u-r+m >= 0 {
			return r
		}
	}
}
