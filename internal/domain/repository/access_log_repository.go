package repository

import (
	"context"

	"wayfinder/internal/domain/entity"
)

// AccessLogRepository defines the interface for access event persistence.
type AccessLogRepository interface {
	// Create persists one access event.
	Create(ctx context.Context, log *entity.AccessLog) error
}
