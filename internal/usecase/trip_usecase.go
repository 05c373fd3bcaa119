package usecase

import (
	"context"

	"wayfinder/internal/domain/entity"
)

// TripUsecase exposes the append-only trip history.
type TripUsecase interface {
	// ListTrips returns the session user's trips, newest first.
	ListTrips(ctx context.Context, session *entity.Session) ([]*entity.Trip, error)
}
