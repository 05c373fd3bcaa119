// Package usecase defines the application-layer interfaces and their
// input/output shapes. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"wayfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePoiInput carries a new POI submission.
type CreatePoiInput struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Category    string   `json:"category" validate:"required,max=100"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	City        string   `json:"city" validate:"max=100"`
	Contact     string   `json:"contact" validate:"max=255"`
	ImageURLs   []string `json:"image_urls" validate:"dive,url"`
	Amenities   []string `json:"amenities"`
	Keywords    []string `json:"keywords"`
	Latitude    float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64  `json:"longitude" validate:"min=-180,max=180"`
}

// PoiUsecase drives the POI working set shown on the map and the POI
// lifecycle operations exposed to users.
type PoiUsecase interface {
	// LoadMapPois produces the working POI set for the map using the
	// locality-first fallback chain. session may be nil for anonymous users.
	LoadMapPois(ctx context.Context, session *entity.Session) ([]*entity.POI, error)

	// GetPoi retrieves one POI, enforcing the visibility rule, and records a
	// best-effort VIEW access event.
	GetPoi(ctx context.Context, session *entity.Session, id uuid.UUID) (*entity.POI, error)

	// CreatePoi submits a new POI. Submissions start pending until moderation
	// activates them.
	CreatePoi(ctx context.Context, session *entity.Session, input *CreatePoiInput) (*entity.POI, error)

	// GeneratePoiShareQR renders a share QR code for an approved POI.
	GeneratePoiShareQR(ctx context.Context, session *entity.Session, id uuid.UUID) ([]byte, error)

	// SetPoiActive flips the moderation state of a POI. Admin only.
	SetPoiActive(ctx context.Context, session *entity.Session, id uuid.UUID, active bool) error

	// DeletePoi removes a POI permanently. Admin only; immediate and irreversible.
	DeletePoi(ctx context.Context, session *entity.Session, id uuid.UUID) error
}
