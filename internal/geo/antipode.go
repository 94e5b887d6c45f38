// Package geo holds pure coordinate math.
package geo

import "antipodes-api/internal/models"

// Antipode returns the point diametrically opposite c on the globe.
// The resulting longitude is normalized into (-180, 180]: 0 maps to 180, while
// 180 and -180 both map to 0, so -180 round-trips to the canonical 180.
// Inputs outside the valid range are not checked.
func Antipode(c models.Coordinate) models.Coordinate {
	lon := c.Longitude + 180
	if lon > 180 {
		lon -= 360
	}
	return models.Coordinate{Latitude: 0 - c.Latitude, Longitude: lon}
}
