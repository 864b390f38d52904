package utils

import "math"

const earthRadiusMeters = 6371000

// HaversineMeters returns the great-circle distance between two coordinates in meters.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// HaversineKM is HaversineMeters in kilometers.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	return HaversineMeters(lat1, lon1, lat2, lon2) / 1000
}
