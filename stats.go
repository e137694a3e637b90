package checkbench

import (
	"fmt"
	"math"
	"sort"
)

// Summary aggregates the measured iterations of one case. Times are in
// nanoseconds per invocation.
type Summary struct {
	Case            CaseID  `json:"case"`
	Samples         int     `json:"samples"`
	Mean            float64 `json:"mean_ns"`
	StdDev          float64 `json:"stddev_ns"`
	Min             float64 `json:"min_ns"`
	Median          float64 `json:"median_ns"`
	Max             float64 `json:"max_ns"`
	CILower         float64 `json:"ci_lower_ns"`
	CIUpper         float64 `json:"ci_upper_ns"`
	ConfidenceLevel float64 `json:"confidence_level"`
	Invocations     int64   `json:"invocations"`
	Hits            int64   `json:"hits"`
	Tail            Tail    `json:"tail"`
}

// Margin is the half-width of the confidence interval.
func (s Summary) Margin() float64 {
	return (s.CIUpper - s.CILower) / 2
}

// Summarize reduces results to one Summary per case, in input order.
// Warm-up iterations are ignored. A result without measured iterations
// yields ErrNoSamples.
func Summarize(results []Result, level float64) ([]Summary, error) {
	out := make([]Summary, 0, len(results))
	for _, r := range results {
		s, err := summarize(r, level)
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", r.Case, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func summarize(r Result, level float64) (Summary, error) {
	if len(r.Measured) == 0 {
		return Summary{}, ErrNoSamples
	}

	samples := make([]float64, len(r.Measured))
	s := Summary{Case: r.Case, Samples: len(samples), ConfidenceLevel: level}
	for i, it := range r.Measured {
		samples[i] = it.NsPerOp()
		s.Invocations += it.Invocations
		s.Hits += it.Hits
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Median = percentile(sorted, 0.5)
	s.Mean = mean(samples)
	s.StdDev = math.Sqrt(variance(samples, s.Mean))
	s.CILower, s.CIUpper = ConfidenceInterval(samples, level)
	s.Tail = tailOf(sorted)

	return s, nil
}

func mean(samples []float64) float64 {
	var sum float64
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples))
}

// variance is the unbiased sample variance; zero for fewer than two samples.
func variance(samples []float64, mean float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	var sum float64
	for _, v := range samples {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(samples)-1)
}

// percentile interpolates linearly between the closest ranks of sorted.
func percentile(sorted []float64, p float64) float64 {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}

	index := p * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}

	fraction := index - float64(lower)
	return sorted[lower]*(1-fraction) + sorted[upper]*fraction
}

// ConfidenceInterval returns a symmetric interval around the sample mean.
// Fewer than 30 samples use Student's t critical values, more use z.
func ConfidenceInterval(samples []float64, level float64) (lower, upper float64) {
	switch len(samples) {
	case 0:
		return 0, 0
	case 1:
		return samples[0], samples[0]
	}

	m := mean(samples)
	stdErr := math.Sqrt(variance(samples, m) / float64(len(samples)))
	margin := tCriticalValue(len(samples)-1, level) * stdErr
	return m - margin, m + margin
}

// tCriticalValue returns the two-tailed t critical value for df degrees of
// freedom. Past 30 degrees of freedom the normal approximation is used.
func tCriticalValue(df int, level float64) float64 {
	t90 := []float64{6.314, 2.920, 2.353, 2.132, 2.015, 1.943, 1.895, 1.860, 1.833, 1.812,
		1.796, 1.782, 1.771, 1.761, 1.753, 1.746, 1.740, 1.734, 1.729, 1.725,
		1.721, 1.717, 1.714, 1.711, 1.708, 1.706, 1.703, 1.701, 1.699, 1.697}
	t95 := []float64{12.706, 4.303, 3.182, 2.776, 2.571, 2.447, 2.365, 2.306, 2.262, 2.228,
		2.201, 2.179, 2.160, 2.145, 2.131, 2.120, 2.110, 2.101, 2.093, 2.086,
		2.080, 2.074, 2.069, 2.064, 2.060, 2.056, 2.052, 2.048, 2.045, 2.042}
	t99 := []float64{63.657, 9.925, 5.841, 4.604, 4.032, 3.707, 3.499, 3.355, 3.250, 3.169,
		3.106, 3.055, 3.012, 2.977, 2.947, 2.921, 2.898, 2.878, 2.861, 2.845,
		2.831, 2.819, 2.807, 2.797, 2.787, 2.779, 2.771, 2.763, 2.756, 2.750}

	if df < 1 {
		df = 1
	}

	var table []float64
	var z float64
	switch {
	case level >= 0.99:
		table, z = t99, 2.576
	case level >= 0.95:
		table, z = t95, 1.96
	default:
		table, z = t90, 1.645
	}

	if df > len(table) {
		return z
	}
	return table[df-1]
}
