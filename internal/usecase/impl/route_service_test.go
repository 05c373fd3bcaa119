package impl

import (
	"context"
	"testing"
	"time"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"
	"wayfinder/internal/infra/persistence/memory"
	"wayfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	yaoundeOrigin      = entity.Coordinate{Latitude: 3.8480, Longitude: 11.5021}
	yaoundeDestination = entity.Coordinate{Latitude: 3.8667, Longitude: 11.5167}
)

func testRouteResult() *entity.RouteResult {
	return &entity.RouteResult{
		Distance: 3200,
		Duration: 8 * time.Minute,
		Geometry: orb.LineString{
			{11.5021, 3.8480},
			{11.5100, 3.8570},
			{11.5167, 3.8667},
		},
		Steps: []entity.RouteStep{
			{Instruction: "head north", Distance: 1600},
			{Instruction: "arrive", Distance: 1600},
		},
		AverageSpeed: 6.6,
	}
}

func newRouteTestService(t *testing.T, provider *fakeRouteProvider) (usecase.RouteUsecase, *memory.TripRepository, *memory.AccessLogRepository) {
	t.Helper()

	tripRepo := memory.NewTripRepository()
	logRepo := memory.NewAccessLogRepository()
	accessLog := NewAccessLogService(logRepo, &fakePublisher{}, testLogger(), 16)
	t.Cleanup(func() { _ = accessLog.Close() })

	svc := NewRouteService(provider, tripRepo, accessLog, testLogger())

	return svc, tripRepo, logRepo
}

func TestGetRoute_Success(t *testing.T) {
	provider := &fakeRouteProvider{result: testRouteResult()}
	svc, tripRepo, logRepo := newRouteTestService(t, provider)

	session := &entity.Session{UserID: uuid.New(), OrganizationID: uuid.New()}
	poiID := uuid.New()

	result, err := svc.GetRoute(context.Background(), session, &usecase.RouteInput{
		Origin:      yaoundeOrigin,
		Destination: yaoundeDestination,
		Mode:        entity.ModeDriving,
		ArriveName:  "Palais des Congres",
		PoiID:       &poiID,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Greater(t, result.Distance, 0.0)
	assert.Greater(t, result.Duration, time.Duration(0))
	assert.GreaterOrEqual(t, len(result.Geometry), 2)

	trips, err := tripRepo.FindByUser(context.Background(), session.UserID)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Palais des Congres", trips[0].ArriveName)
	assert.Equal(t, "Current location", trips[0].DepartName)
	assert.Equal(t, entity.ModeDriving, trips[0].Mode)

	assert.Eventually(t, func() bool {
		logs := logRepo.All()

		return len(logs) == 1 && logs[0].AccessType == entity.AccessTypeTrip && logs[0].PoiID == poiID
	}, time.Second, 10*time.Millisecond)
}

func TestGetRoute_UnavailableReturnsNilNil(t *testing.T) {
	provider := &fakeRouteProvider{err: service.ErrNoRoute}
	svc, tripRepo, _ := newRouteTestService(t, provider)

	session := &entity.Session{UserID: uuid.New()}
	result, err := svc.GetRoute(context.Background(), session, &usecase.RouteInput{
		Origin:      yaoundeOrigin,
		Destination: yaoundeDestination,
		Mode:        entity.ModeWalking,
	})
	assert.NoError(t, err)
	assert.Nil(t, result)

	// No trip is recorded for an unavailable route.
	trips, err := tripRepo.FindByUser(context.Background(), session.UserID)
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestGetRoute_InvalidInput(t *testing.T) {
	svc, _, _ := newRouteTestService(t, &fakeRouteProvider{result: testRouteResult()})

	_, err := svc.GetRoute(context.Background(), nil, &usecase.RouteInput{
		Origin:      yaoundeOrigin,
		Destination: yaoundeDestination,
		Mode:        entity.TransportMode("jetpack"),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransportMode))

	_, err = svc.GetRoute(context.Background(), nil, &usecase.RouteInput{
		Origin:      entity.Coordinate{Latitude: 99, Longitude: 0},
		Destination: yaoundeDestination,
		Mode:        entity.ModeDriving,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinate))
}

func TestGetRoute_StaleResponseDiscarded(t *testing.T) {
	provider := &fakeRouteProvider{result: testRouteResult()}
	svc, _, _ := newRouteTestService(t, provider)

	var second *entity.RouteResult
	var secondErr error

	// While the first request is in flight, a second one is issued. The
	// first response resolves afterwards and must be discarded.
	provider.onFetch = func() {
		second, secondErr = svc.GetRoute(context.Background(), nil, &usecase.RouteInput{
			Origin:      yaoundeOrigin,
			Destination: yaoundeDestination,
			Mode:        entity.ModeCycling,
		})
	}

	first, err := svc.GetRoute(context.Background(), nil, &usecase.RouteInput{
		Origin:      yaoundeOrigin,
		Destination: yaoundeDestination,
		Mode:        entity.ModeDriving,
	})
	assert.NoError(t, err)
	assert.Nil(t, first, "superseded response must be discarded")

	assert.NoError(t, secondErr)
	assert.NotNil(t, second, "latest request wins")
}
