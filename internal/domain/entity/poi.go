// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// POI is the core entity for a point of interest shown on the map.
// A POI starts its life pending (IsActive=false) after a user submission and
// becomes visible to everyone once moderation activates it. A pending POI is
// still visible to its creator.
type POI struct {
	ID          uuid.UUID  `json:"id"`           // The Global Unique Identifier (GUID) for the POI.
	Name        string     `json:"name"`         // Display name.
	Category    string     `json:"category"`     // Category label, e.g. "restaurant", "museum".
	Description string     `json:"description"`  // Free-form description.
	Address     string     `json:"address"`      // Human-readable street address.
	City        string     `json:"city"`         // City name.
	Contact     string     `json:"contact"`      // Phone or email contact.
	ImageURLs   []string   `json:"image_urls"`   // Ordered list of image URLs.
	Amenities   []string   `json:"amenities"`    // Amenity tags.
	Keywords    []string   `json:"keywords"`     // Search keywords.
	Location    Coordinate `json:"location"`     // Geographic position.
	IsActive    bool       `json:"is_active"`    // Whether moderation has approved the POI.
	CreatedBy   uuid.UUID  `json:"created_by"`   // The user who submitted the POI.
	IsTransient bool       `json:"is_transient"` // True for reverse-geocoded probe results, never persisted.
	CreatedAt   time.Time  `json:"created_at"`   // Timestamp of when this POI was created.
	UpdatedAt   time.Time  `json:"updated_at"`   // Timestamp of the last modification.
}

// VisibleTo reports whether the POI may be shown to the given user.
// Inactive POIs are visible only to their creator.
func (p *POI) VisibleTo(userID uuid.UUID) bool {
	return p.IsActive || p.CreatedBy == userID
}
