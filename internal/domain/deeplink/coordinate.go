package deeplink

import "fmt"

// Coordinate is a geographic point in decimal degrees.
//
// Values are carried as-is: the navigation apps accept out-of-range
// coordinates without complaint, so range checks are left to callers
// that need them.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Format renders the coordinate as "lat,lng" with exactly six decimal
// places, the form every supported navigation app parses. The decimal
// separator is always '.', independent of the process locale.
func (c Coordinate) Format() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}

// FormatAngle renders a single angular value with exactly six decimal
// places, for URL formats that place latitude and longitude in separate
// fields.
func FormatAngle(degrees float64) string {
	return fmt.Sprintf("%.6f", degrees)
}
