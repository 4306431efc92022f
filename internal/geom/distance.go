package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// DistanceFunc returns the great-circle distance between two points in kilometers.
type DistanceFunc func(a, b GeoPoint) float64

// Distance is the haversine distance in kilometers. Elevation is ignored.
// NaN coordinates propagate into the result.
func Distance(a, b GeoPoint) float64 {
	return geo.DistanceHaversine(orb.Point{a.Lon, a.Lat}, orb.Point{b.Lon, b.Lat}) / 1000
}
