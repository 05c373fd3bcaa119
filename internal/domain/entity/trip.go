package entity

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the persisted summary of one successful route computation.
// Trips form an append-only history owned by the requesting user.
type Trip struct {
	ID         uuid.UUID     `json:"id"`          // The Global Unique Identifier (GUID) for the trip.
	UserID     uuid.UUID     `json:"user_id"`     // The user who requested the route.
	PoiID      *uuid.UUID    `json:"poi_id"`      // Optional destination POI reference.
	DepartName string        `json:"depart_name"` // Display name of the origin.
	ArriveName string        `json:"arrive_name"` // Display name of the destination.
	Distance   float64       `json:"distance"`    // Route distance in meters.
	Duration   time.Duration `json:"duration"`    // Estimated travel time.
	Mode       TransportMode `json:"mode"`        // Transport mode used for the route.
	CreatedAt  time.Time     `json:"created_at"`  // Timestamp of when the route was computed.
}
