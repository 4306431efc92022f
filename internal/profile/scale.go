package profile

import (
	"math"
)

// Linear maps Domain onto Range by linear interpolation. Values outside the
// domain extrapolate along the same line; nothing is clamped.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

// Apply maps a domain value to a range value. A zero-width domain maps every
// value to the middle of the range.
func (l Linear) Apply(v float64) float64 {
	return lerp(l.Range, normalize(l.Domain, v))
}

// Invert maps a range value back to the domain.
func (l Linear) Invert(px float64) float64 {
	return lerp(l.Domain, normalize(l.Range, px))
}

func normalize(d [2]float64, v float64) float64 {
	span := d[1] - d[0]
	if span == 0 {
		return 0.5
	}
	return (v - d[0]) / span
}

func lerp(r [2]float64, t float64) float64 {
	return r[0]*(1-t) + r[1]*t
}

// Ticks returns round tick values (steps of 1, 2 or 5 times a power of ten)
// inside the domain, aiming for about count of them.
func (l Linear) Ticks(count int) []float64 {
	lo, hi := l.Domain[0], l.Domain[1]
	if hi < lo {
		lo, hi = hi, lo
	}
	if count <= 0 || math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	step := tickStep(lo, hi, count)
	if step <= 0 {
		return nil
	}
	start := math.Ceil(lo / step)
	stop := math.Floor(hi / step)
	ticks := make([]float64, 0, int(stop-start)+1)
	// Sub-unit steps divide by the inverse step so 0.3 stays 0.3.
	inv := 0.0
	if step < 1 {
		inv = math.Round(1 / step)
	}
	for k := start; k <= stop; k++ {
		if inv > 0 {
			ticks = append(ticks, k/inv)
		} else {
			ticks = append(ticks, k*step)
		}
	}
	return ticks
}

func tickStep(lo, hi float64, count int) float64 {
	raw := (hi - lo) / float64(count)
	power := math.Pow(10, math.Floor(math.Log10(raw)))
	switch err := raw / power; {
	case err >= math.Sqrt(50):
		return power * 10
	case err >= math.Sqrt(10):
		return power * 5
	case err >= math.Sqrt(2):
		return power * 2
	default:
		return power
	}
}

// TickPolicy chooses how many axis ticks to ask for from the surface size.
// It is a rendering hint only.
type TickPolicy struct {
	WideWidth  float64 // below this surface width use NarrowX
	TallHeight float64 // below this surface height use ShortY
	NarrowX    int
	WideX      int
	ShortY     int
	TallY      int
}

// DefaultTickPolicy asks for 6 or 12 distance ticks around 768px of width and
// 4 or 12 elevation ticks around 300px of height.
var DefaultTickPolicy = TickPolicy{
	WideWidth:  768,
	TallHeight: 300,
	NarrowX:    6,
	WideX:      12,
	ShortY:     4,
	TallY:      12,
}

// Counts returns the horizontal and vertical tick counts for a surface.
func (p TickPolicy) Counts(surfaceWidth, surfaceHeight float64) (x, y int) {
	x, y = p.WideX, p.TallY
	if surfaceWidth < p.WideWidth {
		x = p.NarrowX
	}
	if surfaceHeight < p.TallHeight {
		y = p.ShortY
	}
	return x, y
}

// Scales maps a Series into a drawing surface.
type Scales struct {
	X      Linear // km -> px
	Y      Linear // m -> px, inverted
	XTicks int
	YTicks int
}

// Compute derives the scales for series drawn into a width x height surface
// inset by padding on the left and top. The tick counts come from policy
// applied to the same width and height. Compute is a pure function.
func Compute(series Series, width, height, padding float64, policy TickPolicy) Scales {
	lo, hi := series.ElevationExtent()
	xt, yt := policy.Counts(width, height)
	return Scales{
		X: Linear{
			Domain: [2]float64{0, series.MaxDistance()},
			Range:  [2]float64{padding, width},
		},
		Y: Linear{
			Domain: [2]float64{lo, hi},
			Range:  [2]float64{height, padding},
		},
		XTicks: xt,
		YTicks: yt,
	}
}
