package profile

import (
	"fmt"
	"strconv"
)

// DistanceLabel formats an x-axis tick. The origin is left blank so it does
// not collide with the elevation axis.
func DistanceLabel(km float64) string {
	if km == 0 {
		return ""
	}
	return strconv.FormatFloat(km, 'g', -1, 64) + "km"
}

// ElevationLabel formats a y-axis tick.
func ElevationLabel(m float64) string {
	if m == 0 {
		return "0"
	}
	return strconv.FormatFloat(m, 'g', -1, 64) + "m"
}

// Tooltip is the focus readout for a sample.
func Tooltip(s Sample) string {
	return fmt.Sprintf("%.2fkm %gm", s.Distance, s.Elevation)
}
