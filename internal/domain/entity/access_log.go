package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessType classifies a recorded access event.
type AccessType string

const (
	// AccessTypeView is recorded when a user opens a POI detail.
	AccessTypeView AccessType = "VIEW"
	// AccessTypeTrip is recorded when a route to a POI is computed.
	AccessTypeTrip AccessType = "TRIP"
)

// String returns the string representation of the AccessType.
func (t AccessType) String() string {
	return string(t)
}

// AccessLog is a fire-and-forget analytics event. Recording an access log
// never blocks the caller and failures are swallowed.
type AccessLog struct {
	ID             uuid.UUID         `json:"id"`              // The Global Unique Identifier (GUID) for the event.
	PoiID          uuid.UUID         `json:"poi_id"`          // The POI the event refers to.
	UserID         uuid.UUID         `json:"user_id"`         // The user who triggered the event.
	OrganizationID uuid.UUID         `json:"organization_id"` // The organization scope of the session.
	PlatformType   string            `json:"platform_type"`   // Client platform, e.g. "web".
	AccessType     AccessType        `json:"access_type"`     // VIEW or TRIP.
	Metadata       map[string]string `json:"metadata"`        // Optional free-form attributes.
	CreatedAt      time.Time         `json:"created_at"`      // Timestamp of the event.
}
