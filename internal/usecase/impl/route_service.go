package impl

import (
	"context"
	"log/slog"
	"sync/atomic"

	"wayfinder/internal/domain/constants"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/repository"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/usecase"
)

const (
	defaultDepartName = "Current location"
	defaultArriveName = "Destination"
)

// routeService implements the RouteUsecase interface.
//
// Rapid re-requests (mode switching) can resolve out of order. Every request
// takes a monotonic sequence number and a response is discarded when a newer
// request was issued while it was in flight, so the last-issued request wins.
type routeService struct {
	provider  service.RouteProvider
	tripRepo  repository.TripRepository
	accessLog usecase.AccessLogUsecase
	logger    *slog.Logger

	seq atomic.Uint64
}

// NewRouteService creates a new route service instance.
func NewRouteService(
	provider service.RouteProvider,
	tripRepo repository.TripRepository,
	accessLog usecase.AccessLogUsecase,
	logger *slog.Logger,
) usecase.RouteUsecase {
	return &routeService{
		provider:  provider,
		tripRepo:  tripRepo,
		accessLog: accessLog,
		logger:    logger,
	}
}

// GetRoute computes a route. An unavailable route is not an error: the caller
// receives (nil, nil) and shows "itinerary unavailable"; the cause is logged.
func (s *routeService) GetRoute(ctx context.Context, session *entity.Session, input *usecase.RouteInput) (*entity.RouteResult, error) {
	if !input.Mode.IsValid() {
		return nil, domainerrors.ErrInvalidTransportMode
	}
	if !input.Origin.IsValid() || !input.Destination.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	seq := s.seq.Add(1)

	result, err := s.provider.FetchRoute(ctx, input.Origin, input.Destination, input.Mode)
	if err != nil {
		s.logger.Warn("route unavailable",
			slog.String("mode", input.Mode.String()),
			slog.Any("error", err),
		)

		return nil, nil
	}

	// A newer request was issued while this one was in flight; its response
	// must not overtake the newer one.
	if s.seq.Load() != seq {
		s.logger.Debug("discarding stale route response",
			slog.Uint64("seq", seq),
			slog.Uint64("latest", s.seq.Load()),
		)

		return nil, nil
	}

	if session != nil {
		s.recordTrip(ctx, session, input, result)
	}

	return result, nil
}

// recordTrip appends the computed route to the user's history and enqueues a
// TRIP access event. History failures never fail the route request.
func (s *routeService) recordTrip(ctx context.Context, session *entity.Session, input *usecase.RouteInput, result *entity.RouteResult) {
	departName := input.DepartName
	if departName == "" {
		departName = defaultDepartName
	}
	arriveName := input.ArriveName
	if arriveName == "" {
		arriveName = defaultArriveName
	}

	trip := &entity.Trip{
		UserID:     session.UserID,
		PoiID:      input.PoiID,
		DepartName: departName,
		ArriveName: arriveName,
		Distance:   result.Distance,
		Duration:   result.Duration,
		Mode:       input.Mode,
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		s.logger.Warn("failed to record trip",
			slog.String("user_id", session.UserID.String()),
			slog.Any("error", err),
		)
	}

	if input.PoiID != nil {
		s.accessLog.Record(&entity.AccessLog{
			PoiID:          *input.PoiID,
			UserID:         session.UserID,
			OrganizationID: session.OrganizationID,
			PlatformType:   constants.PlatformTypeWeb,
			AccessType:     entity.AccessTypeTrip,
		})
	}
}
