package geom

import (
	"errors"
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
)

// LoadGPX reads a GPX file. Track points win over route points, which win
// over bare waypoints. Points without elevation get 0.
func LoadGPX(path string) (Route, error) {
	g, err := gpx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("gpx: %w", err)
	}
	return routeFromGPX(g)
}

// ParseGPX is LoadGPX for in-memory data.
func ParseGPX(data []byte) (Route, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("gpx: %w", err)
	}
	return routeFromGPX(g)
}

func routeFromGPX(g *gpx.GPX) (Route, error) {
	var r Route
	add := func(p gpx.GPXPoint) {
		var ele float64
		if p.Elevation.NotNull() {
			ele = p.Elevation.Value()
		}
		r = append(r, GeoPoint{Lon: p.Longitude, Lat: p.Latitude, Ele: ele})
	}
	for _, track := range g.Tracks {
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				add(p)
			}
		}
	}
	if len(r) == 0 {
		for _, rt := range g.Routes {
			for _, p := range rt.Points {
				add(p)
			}
		}
	}
	if len(r) == 0 {
		for _, p := range g.Waypoints {
			add(p)
		}
	}
	if len(r) == 0 {
		return nil, errors.New("gpx: no track points")
	}
	return r, nil
}
