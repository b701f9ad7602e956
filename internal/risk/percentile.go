package risk

import (
	"math"
)

// Percentile interpolates linearly between the two closest ranks of an
// ascending slice, with p in [0, 100]. Rank is p/100*(n-1), so the 0th and
// 100th percentiles are the min and the max.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	p = math.Min(math.Max(p, 0), 100)

	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
