package service

import (
	"context"

	"wayfinder/internal/domain/entity"
)

// ReverseGeocoder resolves a coordinate into a POI-shaped description of the
// place at that location.
type ReverseGeocoder interface {
	// ReverseGeocode looks up the place at the given coordinate.
	// Returns (nil, nil) when the provider knows nothing about the location;
	// a non-nil result is transient and never persisted.
	ReverseGeocode(ctx context.Context, coord entity.Coordinate) (*entity.POI, error)
}
