package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccessEvent is the wire shape of one access-log event published for
// analytics consumers.
type AccessEvent struct {
	EventID        string            `json:"event_id"`
	PoiID          uuid.UUID         `json:"poi_id"`
	UserID         uuid.UUID         `json:"user_id"`
	OrganizationID uuid.UUID         `json:"organization_id"`
	PlatformType   string            `json:"platform_type"`
	AccessType     string            `json:"access_type"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	OccurredAt     time.Time         `json:"occurred_at"`
	RequestID      string            `json:"request_id,omitempty"`
}

// EventPublisher publishes access events to an external message bus.
type EventPublisher interface {
	// PublishAccessEvent publishes one event. Callers treat failures as
	// best-effort; the publisher never retries.
	PublishAccessEvent(ctx context.Context, event *AccessEvent) error

	// Close releases publisher resources.
	Close() error
}
