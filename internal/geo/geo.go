// Package geo provides geodesic calculations shared by the navigation and
// map view layers.
package geo

import (
	"math"

	"wayfinder/internal/domain/entity"
)

const earthRadiusM = 6371000.0

// Distance returns the great-circle distance between two coordinates in
// meters, computed with the haversine formula. The result is symmetric and
// zero (within floating tolerance) for identical inputs.
func Distance(a, b entity.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lng1 := a.Longitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lng2 := b.Longitude * math.Pi / 180

	deltaLat := lat2 - lat1
	deltaLng := lng2 - lng1

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c
}

// Bearing returns the initial bearing from a to b in degrees, normalized to
// [0, 360). Used for camera heading during navigation follow.
func Bearing(a, b entity.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	deltaLng := (b.Longitude - a.Longitude) * math.Pi / 180

	y := math.Sin(deltaLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLng)

	deg := math.Atan2(y, x) * 180 / math.Pi

	return math.Mod(deg+360, 360)
}
