package geom

import "github.com/paulmach/orb"

// GeoPoint is one route vertex: degrees, degrees, meters.
type GeoPoint struct {
	Lon float64
	Lat float64
	Ele float64
}

// Route is an ordered sequence of GeoPoints as supplied by a loader or the caller.
type Route []GeoPoint

// Clone returns a copy the caller may modify freely.
func (r Route) Clone() Route {
	if r == nil {
		return nil
	}
	out := make(Route, len(r))
	copy(out, r)
	return out
}

// LineString drops elevation and returns the plan-view geometry.
func (r Route) LineString() orb.LineString {
	ls := make(orb.LineString, 0, len(r))
	for _, p := range r {
		ls = append(ls, orb.Point{p.Lon, p.Lat})
	}
	return ls
}

// Bound is the lon/lat bounding box of the route. ok is false when the box
// has no area (empty route, a single point, or a purely vertical/horizontal
// segment); callers projecting such a box onto a map must pad it first.
func (r Route) Bound() (b orb.Bound, ok bool) {
	if len(r) == 0 {
		return orb.Bound{}, false
	}
	b = r.LineString().Bound()
	return b, b.Max[0] > b.Min[0] && b.Max[1] > b.Min[1]
}
