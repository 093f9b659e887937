// Package geo provides great-circle distance math for discovery ranking.
package geo

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// DistanceKm computes the haversine great-circle distance in kilometers
// between two WGS84 degree coordinates. Inputs are not validated; NaN
// inputs propagate to the result.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLng := degToRad(lng2 - lng1)
	lat1Rad := degToRad(lat1)
	lat2Rad := degToRad(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// FormatDistance renders a distance for display: meters rounded to the
// nearest 10 m below 1 km, otherwise kilometers with one decimal.
func FormatDistance(km float64) string {
	if km < 1 {
		m := math.Round(km*100) * 10
		return fmt.Sprintf("%.0f m", m)
	}
	return fmt.Sprintf("%.1f km", km)
}
