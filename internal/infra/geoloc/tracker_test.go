package geoloc

import (
	"context"
	"log/slog"
	"testing"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker() *Tracker {
	return NewTracker(slog.New(slog.DiscardHandler))
}

func TestTracker_CurrentWithoutReport(t *testing.T) {
	tracker := newTestTracker()

	_, err := tracker.Current(context.Background())
	assert.ErrorIs(t, err, service.ErrPositionUnavailable)
}

func TestTracker_ReportThenCurrent(t *testing.T) {
	tracker := newTestTracker()
	coord := entity.Coordinate{Latitude: 3.8480, Longitude: 11.5021}

	require.NoError(t, tracker.Report(coord))

	got, err := tracker.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, coord, got)
}

func TestTracker_ReportRejectsInvalid(t *testing.T) {
	tracker := newTestTracker()

	err := tracker.Report(entity.Coordinate{Latitude: 95, Longitude: 0})
	assert.Error(t, err)

	_, err = tracker.Current(context.Background())
	assert.ErrorIs(t, err, service.ErrPositionUnavailable)
}

func TestTracker_StartDeliversSamples(t *testing.T) {
	tracker := newTestTracker()

	samples, err := tracker.Start()
	require.NoError(t, err)

	coord := entity.Coordinate{Latitude: 3.8667, Longitude: 11.5167}
	require.NoError(t, tracker.Report(coord))

	assert.Equal(t, coord, <-samples)
}

func TestTracker_StartIsIdempotent(t *testing.T) {
	tracker := newTestTracker()

	first, err := tracker.Start()
	require.NoError(t, err)
	second, err := tracker.Start()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTracker_StopHaltsDelivery(t *testing.T) {
	tracker := newTestTracker()

	samples, err := tracker.Start()
	require.NoError(t, err)

	tracker.Stop()

	// Channel is closed; reports after Stop are not delivered.
	require.NoError(t, tracker.Report(entity.Coordinate{Latitude: 1, Longitude: 1}))

	_, open := <-samples
	assert.False(t, open)
}

func TestTracker_StopWhenNotTracking(t *testing.T) {
	tracker := newTestTracker()

	// Must not panic.
	tracker.Stop()
	tracker.Stop()
}

func TestTracker_ReportWithoutTracking(t *testing.T) {
	tracker := newTestTracker()

	// No subscriber; report only updates the last known position.
	coord := entity.Coordinate{Latitude: 3.8480, Longitude: 11.5021}
	require.NoError(t, tracker.Report(coord))

	got, err := tracker.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, coord, got)
}
