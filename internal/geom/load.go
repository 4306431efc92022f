package geom

import (
	"path/filepath"
	"strings"
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".gpx", ".geojson", ".json", ".csv", ".kml", ".wkt"}

// Supported reports whether Load can read path, judging by its extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load dispatches on the file extension.
func Load(path string) (Route, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".gpx":
		return LoadGPX(path)
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		return LoadWKT(path)
	default:
		return nil, &UnsupportedError{Ext: ext}
	}
}

// UnsupportedError is returned by Load for unknown file extensions.
type UnsupportedError struct {
	Ext string
}

func (e *UnsupportedError) Error() string { return "unsupported file: " + e.Ext }
