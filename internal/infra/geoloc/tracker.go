// Package geoloc implements the location source fed by client position
// reports.
package geoloc

import (
	"context"
	"log/slog"
	"sync"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"

	"github.com/pkg/errors"
)

// sampleBuffer bounds how many undelivered samples are held before new
// ones are dropped. Navigation only cares about the freshest positions.
const sampleBuffer = 16

// Tracker implements service.LocationSource. Position samples are pushed in
// through Report (the web client posts them over HTTP) and fanned out to the
// channel opened by Start. All state transitions happen under one mutex, so
// once Stop returns no further sample can be delivered.
type Tracker struct {
	mu       sync.Mutex
	last     *entity.Coordinate
	tracking bool
	samples  chan entity.Coordinate
	logger   *slog.Logger
}

// NewTracker creates a tracker with no known position.
func NewTracker(logger *slog.Logger) *Tracker {
	return &Tracker{logger: logger}
}

// Report records a new position sample. Invalid coordinates are rejected.
// While tracking is active the sample is also delivered to the subscriber;
// delivery never blocks, the oldest undelivered samples win.
func (t *Tracker) Report(coord entity.Coordinate) error {
	if !coord.IsValid() {
		return errors.New("coordinate is outside valid bounds")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.last = &coord

	if !t.tracking {
		return nil
	}

	select {
	case t.samples <- coord:
	default:
		t.logger.Debug("position sample dropped, subscriber lagging",
			slog.Float64("lat", coord.Latitude),
			slog.Float64("lng", coord.Longitude),
		)
	}

	return nil
}

// Current returns the most recent reported position.
func (t *Tracker) Current(_ context.Context) (entity.Coordinate, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.last == nil {
		return entity.Coordinate{}, service.ErrPositionUnavailable
	}

	return *t.last, nil
}

// Start begins continuous tracking. Idempotent: a second Start while
// tracking returns the already-open channel.
func (t *Tracker) Start() (<-chan entity.Coordinate, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tracking {
		return t.samples, nil
	}

	t.samples = make(chan entity.Coordinate, sampleBuffer)
	t.tracking = true

	return t.samples, nil
}

// Stop cancels tracking and closes the sample channel. Because Report sends
// under the same mutex, no send can race the close. Safe to call when not
// tracking.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking {
		return
	}

	t.tracking = false
	close(t.samples)
	t.samples = nil
}
