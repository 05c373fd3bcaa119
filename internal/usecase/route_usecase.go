package usecase

import (
	"context"

	"wayfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// RouteInput carries one route computation request.
type RouteInput struct {
	Origin      entity.Coordinate    `json:"origin"`
	Destination entity.Coordinate    `json:"destination"`
	Mode        entity.TransportMode `json:"mode" validate:"required"`
	DepartName  string               `json:"depart_name"`
	ArriveName  string               `json:"arrive_name"`
	PoiID       *uuid.UUID           `json:"poi_id"` // Set when the destination is a known POI.
}

// RouteUsecase computes routes through the external provider.
type RouteUsecase interface {
	// GetRoute computes a route and, on success, appends a Trip to the user's
	// history and records a best-effort TRIP access event.
	//
	// Returns (nil, nil) when the provider cannot produce a route or when the
	// response was superseded by a newer request; callers surface "itinerary
	// unavailable" instead of an error. Invalid input still returns an error.
	GetRoute(ctx context.Context, session *entity.Session, input *RouteInput) (*entity.RouteResult, error)
}
