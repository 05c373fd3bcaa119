package repository

import (
	"context"

	"wayfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// TripRepository defines the interface for trip history persistence.
// Trip history is append-only; trips are never updated or deleted.
type TripRepository interface {
	// Create persists the summary of a successfully computed route.
	Create(ctx context.Context, trip *entity.Trip) error

	// FindByUser retrieves the trip history of a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Trip, error)
}
