// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for POI persistence.
var (
	// ErrPoiNotFound is returned when a POI is not found.
	ErrPoiNotFound = errors.New("poi not found")
)

// PoiRepository defines the interface for POI-related database operations.
type PoiRepository interface {
	// Create persists a new POI submission. New POIs start inactive until moderated.
	Create(ctx context.Context, poi *entity.POI) error

	// FindByID retrieves a POI by its unique ID.
	// Returns ErrPoiNotFound if no such POI exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.POI, error)

	// FindApproved retrieves all moderation-approved POIs.
	FindApproved(ctx context.Context) ([]*entity.POI, error)

	// FindByCreator retrieves all POIs submitted by a user, approved or not.
	FindByCreator(ctx context.Context, userID uuid.UUID) ([]*entity.POI, error)

	// SearchByLocation retrieves approved POIs within radiusKm of center.
	SearchByLocation(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]*entity.POI, error)

	// SetActive flips the moderation state of a POI (approve/reject/deactivate).
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// Delete removes a POI permanently. Deletion is immediate and irreversible.
	Delete(ctx context.Context, id uuid.UUID) error
}
