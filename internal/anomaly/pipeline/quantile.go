package pipeline

import (
	"math"
	"sort"
)

// Quantile returns the q-quantile (0 <= q <= 1) of values using linear
// interpolation between the closest ranks. NaN values are ignored; the
// result is NaN when no values remain.
func Quantile(values []float64, q float64) float64 {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	d := sorted[hi] - sorted[lo]
	// Interpolate from the nearer rank so the result stays within [lo, hi].
	if w >= 0.5 {
		return sorted[hi] - d*(1-w)
	}
	return sorted[lo] + d*w
}

func columnMax(values []float64) float64 {
	m := math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(m) || v > m {
			m = v
		}
	}
	return m
}
