// Package profile turns a route into an elevation profile and resolves
// pointer and drag gestures over it into sample indices.
package profile

import (
	"math"
	"sort"

	"elevmap/internal/geom"
)

// Sample is one profile point: cumulative distance in kilometers and
// elevation in meters.
type Sample struct {
	Distance  float64
	Elevation float64
}

// Series is the profile of a route. It has two more samples than the route:
// a leading and a trailing sample with elevation 0 so the area under the
// line closes on the baseline. Distances never decrease; the trailing sample
// repeats the distance of the last real one.
type Series []Sample

// Build converts route into a Series. route is read, never modified.
// dist may be nil, in which case geom.Distance is used.
func Build(route geom.Route, dist geom.DistanceFunc) Series {
	if len(route) == 0 {
		return nil
	}
	if dist == nil {
		dist = geom.Distance
	}
	padded := make(geom.Route, 0, len(route)+2)
	first, last := route[0], route[len(route)-1]
	first.Ele, last.Ele = 0, 0
	padded = append(padded, first)
	padded = append(padded, route...)
	padded = append(padded, last)

	s := make(Series, len(padded))
	odo := 0.0
	for i, p := range padded {
		if i > 0 {
			odo += dist(padded[i-1], p)
		}
		s[i] = Sample{Distance: odo, Elevation: p.Ele}
	}
	return s
}

// MaxDistance is the distance of the last sample (the series is ordered).
func (s Series) MaxDistance() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Distance
}

// ElevationExtent returns the lowest and highest elevation. NaN elevations
// make both results NaN.
func (s Series) ElevationExtent() (lo, hi float64) {
	if len(s) == 0 {
		return 0, 0
	}
	lo, hi = s[0].Elevation, s[0].Elevation
	for _, v := range s[1:] {
		if math.IsNaN(v.Elevation) {
			return math.NaN(), math.NaN()
		}
		lo = math.Min(lo, v.Elevation)
		hi = math.Max(hi, v.Elevation)
	}
	return lo, hi
}

// RouteIndex maps a series index back to the route point it was built from.
// The padding samples map to the first and last route point.
func RouteIndex(i, routeLen int) int {
	if routeLen <= 0 {
		return 0
	}
	return max(0, min(i-1, routeLen-1))
}

// Stats summarizes the stretch between two series indices, inclusive.
type Stats struct {
	From, To      int
	Distance      float64 // km
	Ascent        float64 // m
	Descent       float64 // m
	MinElevation  float64
	MaxElevation  float64
	StartDistance float64
	EndDistance   float64
}

// Stats computes totals for the closed index range [from, to]. The indices are
// ordered and clamped to the real samples, so the zero-elevation padding never
// counts as ascent or descent.
func (s Series) Stats(from, to int) Stats {
	if len(s) < 3 {
		return Stats{}
	}
	if from > to {
		from, to = to, from
	}
	from = max(1, min(from, len(s)-2))
	to = max(1, min(to, len(s)-2))
	st := Stats{
		From:          from,
		To:            to,
		StartDistance: s[from].Distance,
		EndDistance:   s[to].Distance,
		Distance:      s[to].Distance - s[from].Distance,
		MinElevation:  s[from].Elevation,
		MaxElevation:  s[from].Elevation,
	}
	for i := from + 1; i <= to; i++ {
		d := s[i].Elevation - s[i-1].Elevation
		if d > 0 {
			st.Ascent += d
		} else {
			st.Descent -= d
		}
		st.MinElevation = math.Min(st.MinElevation, s[i].Elevation)
		st.MaxElevation = math.Max(st.MaxElevation, s[i].Elevation)
	}
	return st
}

// ElevationAt interpolates the elevation at distance d along the series.
// ok is false outside [0, MaxDistance] or when the series is empty.
func (s Series) ElevationAt(d float64) (e float64, ok bool) {
	if len(s) == 0 || !(d >= 0 && d <= s.MaxDistance()) {
		return 0, false
	}
	i := sort.Search(len(s), func(j int) bool { return s[j].Distance >= d })
	if i == 0 {
		return s[0].Elevation, true
	}
	a, b := s[i-1], s[i]
	if b.Distance == a.Distance {
		return b.Elevation, true
	}
	t := (d - a.Distance) / (b.Distance - a.Distance)
	return a.Elevation + t*(b.Elevation-a.Elevation), true
}
