package geom

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a CSV route file.
func LoadCSV(path string) (Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads a CSV with a header row.
// Column detection (case-insensitive): lon|lng|long|longitude|x,
// lat|latitude|y and optionally ele|elevation|alt|altitude|z.
// Rows with unparsable coordinates are skipped; an unparsable elevation is 0.
func ReadCSV(rd io.Reader) (Route, error) {
	r := csv.NewReader(rd)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("csv: empty")
	}
	idxLon, idxLat, idxEle := -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "ele", "elevation", "alt", "altitude", "z":
			if idxEle == -1 {
				idxEle = i
			}
		}
	}
	if idxLat == -1 || idxLon == -1 {
		return nil, errors.New("csv: longitude/latitude columns not found")
	}
	var route Route
	for _, row := range recs[1:] {
		if idxLon >= len(row) || idxLat >= len(row) {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxLon]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxLat]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		p := GeoPoint{Lon: lon, Lat: lat}
		if idxEle >= 0 && idxEle < len(row) {
			if ele, err := strconv.ParseFloat(strings.TrimSpace(row[idxEle]), 64); err == nil {
				p.Ele = ele
			}
		}
		route = append(route, p)
	}
	if len(route) == 0 {
		return nil, errors.New("csv: no valid points parsed")
	}
	return route, nil
}
