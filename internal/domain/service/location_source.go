// Package service defines ports to external capabilities consumed by the
// application layer. Concrete implementations live under internal/infra.
package service

import (
	"context"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/errors"
)

// ErrPositionUnavailable is returned when no position can be resolved,
// typically because the client denied or lacks location capability.
// Callers decide whether to retry or degrade; the source never retries.
var ErrPositionUnavailable = errors.New("position unavailable")

// LocationSource produces position samples for the current user.
type LocationSource interface {
	// Current returns the most recent known position.
	// Returns ErrPositionUnavailable when no position has been resolved.
	Current(ctx context.Context) (entity.Coordinate, error)

	// Start begins continuous tracking and returns the sample channel.
	// Calling Start while already tracking has no additional effect and
	// returns the same channel.
	Start() (<-chan entity.Coordinate, error)

	// Stop cancels tracking. After Stop returns no further samples are
	// delivered on the channel returned by Start. Safe to call when not
	// tracking.
	Stop()
}

// LocationReporter accepts client-supplied position samples. The web client
// posts its geolocation readings through this port.
type LocationReporter interface {
	// Report records a new position sample. Invalid coordinates are rejected.
	Report(coord entity.Coordinate) error
}
