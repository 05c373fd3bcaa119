package impl

import (
	"context"
	"testing"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/errors"
	"wayfinder/internal/infra/geoloc"
	"wayfinder/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNavigationTestService(t *testing.T) (usecase.NavigationUsecase, *geoloc.Tracker) {
	t.Helper()

	tracker := geoloc.NewTracker(testLogger())
	mapView := NewMapViewService(&fakeGeocoder{}, testLogger())
	cfg := &config.Config{
		Navigation: &config.NavigationConfig{NoiseFilterM: 5, ArrivalThresholdM: 20},
	}

	nav := NewNavigationService(tracker, tracker, mapView, cfg, testLogger())
	t.Cleanup(nav.Stop)

	return nav, tracker
}

func TestNavigation_StartWithoutRoute(t *testing.T) {
	nav, _ := newNavigationTestService(t)

	err := nav.Start(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrNavigationNotReady))
	assert.Equal(t, usecase.NavigationIdle, nav.Status().State)
}

func TestNavigation_StartWithoutPositionRejected(t *testing.T) {
	nav, _ := newNavigationTestService(t)

	require.NoError(t, nav.SetRoute(testRouteResult(), yaoundeDestination))

	// No position has been reported: the start is rejected with no partial
	// transition and no tracking.
	err := nav.Start(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrPositionUnavailable))
	assert.Equal(t, usecase.NavigationRouteComputed, nav.Status().State)
	assert.Empty(t, nav.Status().TraveledPath)
}

func TestNavigation_SetRouteAndClear(t *testing.T) {
	nav, _ := newNavigationTestService(t)

	assert.Error(t, nav.SetRoute(nil, yaoundeDestination))

	require.NoError(t, nav.SetRoute(testRouteResult(), yaoundeDestination))
	assert.Equal(t, usecase.NavigationRouteComputed, nav.Status().State)

	require.NoError(t, nav.ClearRoute())
	assert.Equal(t, usecase.NavigationIdle, nav.Status().State)
}

func TestNavigation_NoiseFilter(t *testing.T) {
	nav, _ := newNavigationTestService(t)

	require.NoError(t, nav.ReportPosition(yaoundeOrigin))
	require.NoError(t, nav.SetRoute(testRouteResult(), yaoundeDestination))
	require.NoError(t, nav.Start(context.Background()))
	assert.Equal(t, usecase.NavigationNavigating, nav.Status().State)
	assert.Len(t, nav.Status().TraveledPath, 1)

	// ~11 m north of the origin: accepted.
	accepted := entity.Coordinate{Latitude: 3.8481, Longitude: 11.5021}
	// ~2 m from the accepted point: GPS jitter, filtered out.
	jitter := entity.Coordinate{Latitude: 3.84812, Longitude: 11.5021}
	// ~11 m further: accepted again.
	acceptedNext := entity.Coordinate{Latitude: 3.8482, Longitude: 11.5021}

	require.NoError(t, nav.ReportPosition(accepted))
	require.NoError(t, nav.ReportPosition(jitter))
	require.NoError(t, nav.ReportPosition(acceptedNext))

	// Samples are consumed in order, so once the last one landed the path is
	// settled: the jitter sample must not have extended it.
	require.Eventually(t, func() bool {
		return len(nav.Status().TraveledPath) == 3
	}, time.Second, 5*time.Millisecond)

	path := nav.Status().TraveledPath
	assert.Equal(t, yaoundeOrigin, path[0])
	assert.Equal(t, accepted, path[1])
	assert.Equal(t, acceptedNext, path[2])
}

func TestNavigation_ArrivalAutoStop(t *testing.T) {
	nav, tracker := newNavigationTestService(t)

	require.NoError(t, nav.ReportPosition(yaoundeOrigin))
	require.NoError(t, nav.SetRoute(testRouteResult(), yaoundeDestination))
	require.NoError(t, nav.Start(context.Background()))

	// A sample within 20 m of the destination ends the session.
	nearDestination := entity.Coordinate{Latitude: 3.86672, Longitude: 11.51672}
	require.NoError(t, nav.ReportPosition(nearDestination))

	select {
	case event := <-nav.Events():
		assert.Equal(t, usecase.NavigationEventArrived, event.Type)
		assert.Equal(t, nearDestination, event.Position)
	case <-time.After(time.Second):
		t.Fatal("expected an arrival event")
	}

	status := nav.Status()
	assert.Equal(t, usecase.NavigationIdle, status.State)
	assert.Empty(t, status.TraveledPath)
	assert.Nil(t, status.Route)

	// Tracking stopped: a new report is retained as last position but the
	// session no longer consumes it.
	require.NoError(t, tracker.Report(yaoundeOrigin))
	assert.Empty(t, nav.Status().TraveledPath)
}

func TestNavigation_StopClearsStateWithoutSignal(t *testing.T) {
	nav, _ := newNavigationTestService(t)

	require.NoError(t, nav.ReportPosition(yaoundeOrigin))
	require.NoError(t, nav.SetRoute(testRouteResult(), yaoundeDestination))
	require.NoError(t, nav.Start(context.Background()))

	assert.True(t, errors.Is(nav.SetRoute(testRouteResult(), yaoundeDestination), domainerrors.ErrNavigationActive))

	nav.Stop()

	status := nav.Status()
	assert.Equal(t, usecase.NavigationIdle, status.State)
	assert.Empty(t, status.TraveledPath)

	select {
	case event := <-nav.Events():
		t.Fatalf("explicit stop must not emit a completion signal, got %v", event.Type)
	case <-time.After(50 * time.Millisecond):
	}

	// Safe to call again while idle.
	nav.Stop()
}

func TestNavigation_ReportPositionInvalid(t *testing.T) {
	nav, _ := newNavigationTestService(t)

	err := nav.ReportPosition(entity.Coordinate{Latitude: 91, Longitude: 0})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinate))
}
