package checkbench

// NoiseThreshold is the P99/P50 ratio of per-iteration costs above which a
// case is flagged noisy.
const NoiseThreshold = 1.25

// Tail describes how far the slowest iterations of a case sit from the
// typical one.
type Tail struct {
	P50   float64 `json:"p50_ns"`
	P99   float64 `json:"p99_ns"`
	Ratio float64 `json:"ratio"`
	Noisy bool    `json:"noisy"`
}

// tailOf computes the tail of ascending per-iteration costs.
func tailOf(sorted []float64) Tail {
	t := Tail{
		P50:   percentile(sorted, 0.50),
		P99:   percentile(sorted, 0.99),
		Ratio: 1,
	}
	if t.P50 > 0 {
		t.Ratio = t.P99 / t.P50
	}
	t.Noisy = t.Ratio > NoiseThreshold
	return t
}

// Noisy returns the cases whose tail exceeds NoiseThreshold.
func Noisy(summaries []Summary) []CaseID {
	var out []CaseID
	for _, s := range summaries {
		if s.Tail.Noisy {
			out = append(out, s.Case)
		}
	}
	return out
}
