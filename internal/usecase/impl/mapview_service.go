package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/usecase"

	"github.com/google/uuid"
)

const (
	poiZoom    = 16.0
	userZoom   = 15.0
	followZoom = 16.0

	fitTransition    = 800 * time.Millisecond
	centerTransition = 600 * time.Millisecond
	followTransition = 200 * time.Millisecond
)

// routePadding reserves space for the itinerary panel overlaid on the right
// edge of the map.
var routePadding = usecase.CameraPadding{Top: 80, Bottom: 40, Left: 40, Right: 420}

// mapViewService implements the MapViewUsecase interface. It owns camera
// state exclusively; triggers are explicit calls, never polling. An active
// route holds the camera: POI selection and user-location changes only move
// the camera while no route is shown.
type mapViewService struct {
	geocoder service.ReverseGeocoder
	logger   *slog.Logger

	mu          sync.Mutex
	markers     map[uuid.UUID]*usecase.Marker
	order       []uuid.UUID
	selected    uuid.UUID
	routeActive bool
	camera      *usecase.CameraUpdate
	observers   []func(usecase.CameraUpdate)
}

// NewMapViewService creates a new map view service instance.
func NewMapViewService(geocoder service.ReverseGeocoder, logger *slog.Logger) usecase.MapViewUsecase {
	return &mapViewService{
		geocoder: geocoder,
		logger:   logger,
		markers:  make(map[uuid.UUID]*usecase.Marker),
	}
}

// SetPois replaces the marker working set. Markers whose POI ID is unchanged
// keep their identity, so selection and hover state survive a refresh.
func (s *mapViewService) SetPois(pois []*entity.POI) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[uuid.UUID]*usecase.Marker, len(pois))
	order := make([]uuid.UUID, 0, len(pois))

	for _, poi := range pois {
		if _, ok := next[poi.ID]; ok {
			continue
		}
		if existing, ok := s.markers[poi.ID]; ok {
			existing.Poi = poi
			next[poi.ID] = existing
		} else {
			next[poi.ID] = &usecase.Marker{PoiID: poi.ID, Poi: poi}
		}
		order = append(order, poi.ID)
	}

	if s.selected != uuid.Nil {
		if _, ok := next[s.selected]; !ok {
			s.selected = uuid.Nil
		}
	}

	s.markers = next
	s.order = order
}

// SetRoute fits the viewport to the route bounds with asymmetric padding. A
// nil route releases the camera.
func (s *mapViewService) SetRoute(route *entity.RouteResult) {
	s.mu.Lock()

	if route == nil || len(route.Geometry) == 0 {
		s.routeActive = false
		s.mu.Unlock()

		return
	}

	s.routeActive = true

	bound := route.Geometry.Bound()
	center := bound.Center()
	padding := routePadding

	update := usecase.CameraUpdate{
		Mode:       usecase.CameraFitRoute,
		Center:     entity.Coordinate{Latitude: center.Lat(), Longitude: center.Lon()},
		Bound:      &bound,
		Padding:    &padding,
		Transition: fitTransition,
	}
	s.camera = &update
	observers := s.snapshotObservers()
	s.mu.Unlock()

	notify(observers, update)
}

// SelectPoi marks the POI selected and, when no route is active, centers the
// camera on it.
func (s *mapViewService) SelectPoi(id uuid.UUID) error {
	s.mu.Lock()

	marker, ok := s.markers[id]
	if !ok {
		s.mu.Unlock()

		return domainerrors.ErrPoiNotFound
	}

	if s.selected != uuid.Nil {
		if prev, ok := s.markers[s.selected]; ok {
			prev.Selected = false
		}
	}
	marker.Selected = true
	s.selected = id

	if s.routeActive {
		s.mu.Unlock()

		return nil
	}

	update := usecase.CameraUpdate{
		Mode:       usecase.CameraCenterPoi,
		Center:     marker.Poi.Location,
		Zoom:       poiZoom,
		Transition: centerTransition,
	}
	s.camera = &update
	observers := s.snapshotObservers()
	s.mu.Unlock()

	notify(observers, update)

	return nil
}

// SetUserLocation centers the camera on the user when no route is active.
func (s *mapViewService) SetUserLocation(coord entity.Coordinate) {
	if !coord.IsValid() {
		return
	}

	s.mu.Lock()

	if s.routeActive {
		s.mu.Unlock()

		return
	}

	update := usecase.CameraUpdate{
		Mode:       usecase.CameraCenterUser,
		Center:     coord,
		Zoom:       userZoom,
		Transition: centerTransition,
	}
	s.camera = &update
	observers := s.snapshotObservers()
	s.mu.Unlock()

	notify(observers, update)
}

// FollowLocation re-centers on a live navigation sample. The transition is
// deliberately short because samples arrive continuously.
func (s *mapViewService) FollowLocation(coord entity.Coordinate) {
	if !coord.IsValid() {
		return
	}

	s.mu.Lock()

	update := usecase.CameraUpdate{
		Mode:       usecase.CameraFollow,
		Center:     coord,
		Zoom:       followZoom,
		Transition: followTransition,
	}
	s.camera = &update
	observers := s.snapshotObservers()
	s.mu.Unlock()

	notify(observers, update)
}

// ProbeClick reverse-geocodes a click on empty map space. The result, if
// any, is a transient POI that opens the same detail flow as a real one.
func (s *mapViewService) ProbeClick(ctx context.Context, coord entity.Coordinate) (*entity.POI, error) {
	if !coord.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	poi, err := s.geocoder.ReverseGeocode(ctx, coord)
	if err != nil {
		s.logger.Warn("reverse geocode probe failed",
			slog.Float64("lat", coord.Latitude),
			slog.Float64("lng", coord.Longitude),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrGeocodeUnavailable
	}

	return poi, nil
}

// Markers returns the current marker set in insertion order.
func (s *mapViewService) Markers() []*usecase.Marker {
	s.mu.Lock()
	defer s.mu.Unlock()

	markers := make([]*usecase.Marker, 0, len(s.order))
	for _, id := range s.order {
		if marker, ok := s.markers[id]; ok {
			markers = append(markers, marker)
		}
	}

	return markers
}

// Camera returns the last camera update, or nil before any trigger fired.
func (s *mapViewService) Camera() *usecase.CameraUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.camera == nil {
		return nil
	}

	update := *s.camera

	return &update
}

// Observe registers a callback invoked on every camera update.
func (s *mapViewService) Observe(fn func(usecase.CameraUpdate)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, fn)
}

// snapshotObservers copies the observer list. Callers must hold the mutex;
// the callbacks run after it is released.
func (s *mapViewService) snapshotObservers() []func(usecase.CameraUpdate) {
	return append(([]func(usecase.CameraUpdate))(nil), s.observers...)
}

func notify(observers []func(usecase.CameraUpdate), update usecase.CameraUpdate) {
	for _, fn := range observers {
		fn(update)
	}
}
