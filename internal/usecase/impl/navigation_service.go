package impl

import (
	"context"
	"log/slog"
	"sync"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/geo"
	"wayfinder/internal/usecase"
)

const (
	defaultNoiseFilterM      = 5.0
	defaultArrivalThresholdM = 20.0

	navigationEventBuffer = 4
)

// navigationService implements the NavigationUsecase state machine:
// Idle -> RouteComputed -> Navigating -> Idle. One mutex guards every
// transition; samples arrive on the tracker channel and run through the
// noise filter and the arrival check.
type navigationService struct {
	source   service.LocationSource
	reporter service.LocationReporter
	mapView  usecase.MapViewUsecase
	logger   *slog.Logger

	noiseFilterM      float64
	arrivalThresholdM float64

	mu           sync.Mutex
	state        usecase.NavigationState
	route        *entity.RouteResult
	destination  entity.Coordinate
	traveledPath []entity.Coordinate
	lastPosition *entity.Coordinate

	events chan usecase.NavigationEvent
}

// NewNavigationService creates a new navigation session service.
func NewNavigationService(
	source service.LocationSource,
	reporter service.LocationReporter,
	mapView usecase.MapViewUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NavigationUsecase {
	noise := defaultNoiseFilterM
	arrival := defaultArrivalThresholdM
	if cfg.Navigation != nil {
		if cfg.Navigation.NoiseFilterM > 0 {
			noise = cfg.Navigation.NoiseFilterM
		}
		if cfg.Navigation.ArrivalThresholdM > 0 {
			arrival = cfg.Navigation.ArrivalThresholdM
		}
	}

	return &navigationService{
		source:            source,
		reporter:          reporter,
		mapView:           mapView,
		logger:            logger,
		noiseFilterM:      noise,
		arrivalThresholdM: arrival,
		state:             usecase.NavigationIdle,
		events:            make(chan usecase.NavigationEvent, navigationEventBuffer),
	}
}

// SetRoute installs a computed route, Idle|RouteComputed -> RouteComputed.
func (s *navigationService) SetRoute(route *entity.RouteResult, destination entity.Coordinate) error {
	if route == nil || len(route.Geometry) < 2 {
		return domainerrors.ErrRouteUnavailable
	}
	if !destination.IsValid() {
		return domainerrors.ErrInvalidCoordinate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == usecase.NavigationNavigating {
		return domainerrors.ErrNavigationActive
	}

	s.route = route
	s.destination = destination
	s.state = usecase.NavigationRouteComputed

	return nil
}

// ClearRoute drops the computed route, RouteComputed -> Idle.
func (s *navigationService) ClearRoute() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == usecase.NavigationNavigating {
		return domainerrors.ErrNavigationActive
	}

	s.route = nil
	s.state = usecase.NavigationIdle

	return nil
}

// Start begins guidance. A start without a resolvable position is rejected
// with no partial transition: the state stays RouteComputed and no tracking
// is started.
func (s *navigationService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case usecase.NavigationNavigating:
		return domainerrors.ErrNavigationActive
	case usecase.NavigationIdle:
		return domainerrors.ErrNavigationNotReady
	case usecase.NavigationRouteComputed:
	}

	start, err := s.source.Current(ctx)
	if err != nil {
		return domainerrors.ErrPositionUnavailable
	}

	samples, err := s.source.Start()
	if err != nil {
		return domainerrors.ErrPositionUnavailable
	}

	s.state = usecase.NavigationNavigating
	s.traveledPath = []entity.Coordinate{start}
	s.lastPosition = &start

	go s.consume(samples)

	s.mapView.FollowLocation(start)

	return nil
}

// ReportPosition feeds one client position sample to the tracker.
func (s *navigationService) ReportPosition(coord entity.Coordinate) error {
	if !coord.IsValid() {
		return domainerrors.ErrInvalidCoordinate
	}

	return s.reporter.Report(coord)
}

// Stop cancels guidance with the same cleanup as arrival but no completion
// signal. Safe to call in any state.
func (s *navigationService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != usecase.NavigationNavigating {
		return
	}

	// Stopping the tracker closes the sample channel under the tracker's
	// mutex, so no sample can be acted on after Stop returns.
	s.source.Stop()
	s.teardown()
}

// Status returns a snapshot of the session.
func (s *navigationService) Status() *usecase.NavigationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := &usecase.NavigationStatus{
		State:        s.state,
		Route:        s.route,
		TraveledPath: append([]entity.Coordinate(nil), s.traveledPath...),
	}
	if s.state != usecase.NavigationIdle {
		dest := s.destination
		status.Destination = &dest
	}
	if s.lastPosition != nil {
		pos := *s.lastPosition
		status.LastPosition = &pos
	}

	return status
}

// Events returns the stream of one-time lifecycle signals.
func (s *navigationService) Events() <-chan usecase.NavigationEvent {
	return s.events
}

// consume drains tracker samples until the channel closes.
func (s *navigationService) consume(samples <-chan entity.Coordinate) {
	for coord := range samples {
		s.handleSample(coord)
	}
}

// handleSample runs one sample through the noise filter and the arrival
// check, and notifies the camera follow.
func (s *navigationService) handleSample(coord entity.Coordinate) {
	s.mu.Lock()

	if s.state != usecase.NavigationNavigating {
		s.mu.Unlock()

		return
	}

	s.lastPosition = &coord

	// Noise filter: only samples at least noiseFilterM from the last
	// accepted point extend the traveled path.
	last := s.traveledPath[len(s.traveledPath)-1]
	if geo.Distance(last, coord) >= s.noiseFilterM {
		s.traveledPath = append(s.traveledPath, coord)
	}

	arrived := geo.Distance(coord, s.destination) < s.arrivalThresholdM
	if arrived {
		s.source.Stop()
		s.teardown()
	}
	s.mu.Unlock()

	s.mapView.FollowLocation(coord)

	if arrived {
		s.emit(usecase.NavigationEvent{
			Type:     usecase.NavigationEventArrived,
			Position: coord,
		})
	}
}

// teardown resets the session to Idle. Callers must hold the mutex and have
// stopped the tracker.
func (s *navigationService) teardown() {
	s.state = usecase.NavigationIdle
	s.route = nil
	s.traveledPath = nil
}

// emit delivers a lifecycle event without ever blocking the sample loop.
func (s *navigationService) emit(event usecase.NavigationEvent) {
	select {
	case s.events <- event:
	default:
		s.logger.Warn("navigation event dropped, no consumer",
			slog.String("type", string(event.Type)),
		)
	}
}
