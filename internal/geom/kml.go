package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadKML reads a KML file.
func LoadKML(path string) (Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadKML(f)
}

// ReadKML collects every <coordinates> block (LineString, Point)
// in document order regardless of Document/Folder nesting.
// KML tuples are "lon,lat[,alt]".
func ReadKML(rd io.Reader) (Route, error) {
	dec := xml.NewDecoder(rd)
	var route Route
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("kml: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "coordinates" {
			continue
		}
		var text string
		if err := dec.DecodeElement(&text, &se); err != nil {
			return nil, fmt.Errorf("kml: %w", err)
		}
		route = append(route, parseKMLTuples(text)...)
	}
	if len(route) == 0 {
		return nil, errors.New("kml: no coordinates found")
	}
	return route, nil
}

func parseKMLTuples(s string) Route {
	var out Route
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		p := GeoPoint{Lon: lon, Lat: lat}
		if len(vals) >= 3 {
			if ele, err := strconv.ParseFloat(strings.TrimSpace(vals[2]), 64); err == nil {
				p.Ele = ele
			}
		}
		out = append(out, p)
	}
	return out
}
