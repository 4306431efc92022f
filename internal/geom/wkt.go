package geom

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// LoadWKT reads a file holding a single WKT geometry.
func LoadWKT(path string) (Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseWKT(string(data))
}

// ParseWKT parses the route-shaped subset of WKT:
// POINT, MULTIPOINT, LINESTRING and MULTILINESTRING, each optionally tagged
// Z (or ZM/M; a third ordinate is read as elevation, a fourth is ignored).
func ParseWKT(wkt string) (Route, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return nil, errors.New("wkt: missing coordinate list")
	}
	tag := strings.Fields(strings.ToUpper(s[:i]))
	if len(tag) == 0 {
		return nil, errors.New("wkt: missing geometry type")
	}
	measured := len(tag) > 1 && tag[1] == "M"
	body := s[i+1 : j]
	var route Route
	switch tag[0] {
	case "POINT", "LINESTRING":
		route = parseWKTTuples(body, measured)
	case "MULTIPOINT", "MULTILINESTRING":
		// MULTIPOINT may wrap each point in its own parentheses.
		body = strings.NewReplacer("(", "", ")", "").Replace(body)
		route = parseWKTTuples(body, measured)
	default:
		return nil, errors.New("unsupported wkt type: " + tag[0])
	}
	if len(route) == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	return route, nil
}

// parseWKTTuples reads "x y [z [m]]" tuples separated by commas. When the
// geometry is tagged M only, the third ordinate is a measure, not elevation.
func parseWKTTuples(block string, measured bool) Route {
	var out Route
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		p := GeoPoint{Lon: x, Lat: y}
		if len(parts) >= 3 && !measured {
			if z, err := strconv.ParseFloat(parts[2], 64); err == nil {
				p.Ele = z
			}
		}
		out = append(out, p)
	}
	return out
}
