package impl

import (
	"context"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/repository"
	"wayfinder/internal/usecase"
)

// tripService implements the TripUsecase interface.
type tripService struct {
	tripRepo repository.TripRepository
}

// NewTripService creates a new trip service instance.
func NewTripService(tripRepo repository.TripRepository) usecase.TripUsecase {
	return &tripService{tripRepo: tripRepo}
}

// ListTrips returns the session user's trips, newest first.
func (s *tripService) ListTrips(ctx context.Context, session *entity.Session) ([]*entity.Trip, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return s.tripRepo.FindByUser(ctx, session.UserID)
}
