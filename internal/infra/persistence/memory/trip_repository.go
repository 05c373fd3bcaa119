package memory

import (
	"context"
	"sync"
	"time"

	"wayfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// TripRepository is an in-memory implementation of repository.TripRepository.
type TripRepository struct {
	mu    sync.RWMutex
	trips []*entity.Trip
}

// NewTripRepository is the constructor for the in-memory TripRepository.
func NewTripRepository() *TripRepository {
	return &TripRepository{}
}

// Create persists the summary of a successfully computed route.
func (repo *TripRepository) Create(_ context.Context, trip *entity.Trip) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = time.Now()
	}

	cloned := *trip
	repo.trips = append(repo.trips, &cloned)

	return nil
}

// FindByUser retrieves the trip history of a user, newest first.
func (repo *TripRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Trip, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	trips := make([]*entity.Trip, 0)
	// Trips are appended in chronological order; walk backwards for newest first.
	for i := len(repo.trips) - 1; i >= 0; i-- {
		if repo.trips[i].UserID == userID {
			cloned := *repo.trips[i]
			trips = append(trips, &cloned)
		}
	}

	return trips, nil
}
