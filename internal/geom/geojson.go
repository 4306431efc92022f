package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// LoadGeoJSON reads a GeoJSON file and returns its route.
func LoadGeoJSON(path string) (Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseGeoJSON(data)
}

// ParseGeoJSON walks a GeoJSON document and concatenates every LineString,
// MultiLineString, MultiPoint and Point it finds, in document order. The third
// coordinate of a position is the elevation; positions without one get 0.
// Polygons are not routes and are skipped.
func ParseGeoJSON(data []byte) (Route, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	var r Route
	parsePosition := func(v any) (GeoPoint, bool) {
		a, ok := v.([]any)
		if !ok || len(a) < 2 {
			return GeoPoint{}, false
		}
		lon, lok := a[0].(float64)
		lat, aok := a[1].(float64)
		if !lok || !aok {
			return GeoPoint{}, false
		}
		p := GeoPoint{Lon: lon, Lat: lat}
		if len(a) >= 3 {
			if ele, ok := a[2].(float64); ok {
				p.Ele = ele
			}
		}
		return p, true
	}
	addPositions := func(v any) {
		arr, ok := v.([]any)
		if !ok {
			return
		}
		for _, el := range arr {
			if p, ok := parsePosition(el); ok {
				r = append(r, p)
			}
		}
	}
	var walkGeom func(g map[string]any)
	walkGeom = func(g map[string]any) {
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			if p, ok := parsePosition(g["coordinates"]); ok {
				r = append(r, p)
			}
		case "MultiPoint", "LineString":
			addPositions(g["coordinates"])
		case "MultiLineString":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, ls := range arr {
					addPositions(ls)
				}
			}
		case "GeometryCollection":
			if gs, ok := g["geometries"].([]any); ok {
				for _, sub := range gs {
					if sm, ok := sub.(map[string]any); ok {
						walkGeom(sm)
					}
				}
			}
		}
	}
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					if g, ok := fm["geometry"].(map[string]any); ok {
						walkGeom(g)
					}
				}
			}
		}
	case "":
		return nil, errors.New("geojson: missing type")
	default:
		walkGeom(raw)
	}
	if len(r) == 0 {
		return nil, errors.New("geojson: no route positions found")
	}
	return r, nil
}
