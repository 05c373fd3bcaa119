// Package entity contains the core business objects of the project.
package entity

import "math"

// Coordinate is an immutable geographic position in WGS84 degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`  // Latitude in degrees, valid range [-90, 90].
	Longitude float64 `json:"longitude"` // Longitude in degrees, valid range [-180, 180].
}

// IsValid reports whether both components are finite and within bounds.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}

	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
