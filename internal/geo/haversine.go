package geo

import "math"

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// WalkingSpeedMPS is the assumed pace when no routing data is available.
const WalkingSpeedMPS = 1.4

// HaversineMeters returns the great-circle distance between two points.
func HaversineMeters(a, b Point) float64 {
	const R = 6371000.0 // Earth's radius in meters

	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return R * c
}

// WalkSeconds converts a distance into an estimated walking time.
func WalkSeconds(meters float64) float64 {
	return math.Round(meters / WalkingSpeedMPS)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
