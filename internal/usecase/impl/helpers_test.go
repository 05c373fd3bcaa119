package impl

import (
	"context"
	"log/slog"
	"sync"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fakeLocationSource is a scripted LocationSource for tests.
type fakeLocationSource struct {
	mu       sync.Mutex
	position *entity.Coordinate
	samples  chan entity.Coordinate
	tracking bool
}

func newFakeLocationSource(position *entity.Coordinate) *fakeLocationSource {
	return &fakeLocationSource{position: position}
}

func (f *fakeLocationSource) Current(_ context.Context) (entity.Coordinate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.position == nil {
		return entity.Coordinate{}, service.ErrPositionUnavailable
	}

	return *f.position, nil
}

func (f *fakeLocationSource) Start() (<-chan entity.Coordinate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.tracking {
		return f.samples, nil
	}

	f.samples = make(chan entity.Coordinate, 16)
	f.tracking = true

	return f.samples, nil
}

func (f *fakeLocationSource) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.tracking {
		return
	}

	f.tracking = false
	close(f.samples)
	f.samples = nil
}

// fakeRouteProvider returns a scripted result or error.
type fakeRouteProvider struct {
	mu      sync.Mutex
	result  *entity.RouteResult
	err     error
	calls   int
	onFetch func()
}

func (f *fakeRouteProvider) FetchRoute(_ context.Context, _, _ entity.Coordinate, _ entity.TransportMode) (*entity.RouteResult, error) {
	f.mu.Lock()
	f.calls++
	onFetch := f.onFetch
	f.onFetch = nil
	result, err := f.result, f.err
	f.mu.Unlock()

	if onFetch != nil {
		onFetch()
	}

	if err != nil {
		return nil, err
	}

	return result, nil
}

// fakeGeocoder returns a scripted POI or error.
type fakeGeocoder struct {
	poi *entity.POI
	err error
}

func (f *fakeGeocoder) ReverseGeocode(_ context.Context, _ entity.Coordinate) (*entity.POI, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.poi, nil
}

// fakePublisher collects published events.
type fakePublisher struct {
	mu     sync.Mutex
	events []*service.AccessEvent
}

func (f *fakePublisher) PublishAccessEvent(_ context.Context, event *service.AccessEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.events = append(f.events, event)

	return nil
}

func (f *fakePublisher) Close() error {
	return nil
}

func (f *fakePublisher) published() []*service.AccessEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*service.AccessEvent(nil), f.events...)
}
