package profile

import (
	"math"
	"sort"
)

// Resolve returns the index of the sample nearest to pixel x on the scale.
// The pixel is inverted to a distance, the series is bisected for the first
// sample at or beyond it, and the closer of that sample and its predecessor
// wins; equal distances go to the predecessor. Pixels beyond either edge
// resolve to the boundary sample. The result is always a valid index for a
// non-empty series; an empty series yields 0.
func Resolve(series Series, x Linear, px float64) int {
	n := len(series)
	if n < 2 {
		return 0
	}
	x0 := x.Invert(px)
	// Left bisection over [1, n): series[0] is always a candidate via i-1.
	i := 1 + sort.Search(n-1, func(j int) bool {
		return series[j+1].Distance >= x0
	})
	if i > n-1 {
		i = n - 1
	}
	before, after := series[i-1], series[i]
	if math.Abs(after.Distance-x0) < math.Abs(x0-before.Distance) {
		return i
	}
	return i - 1
}
