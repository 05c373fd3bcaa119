package usecase

import (
	"context"

	"wayfinder/internal/domain/entity"
)

// NavigationState names the states of the guidance state machine.
type NavigationState string

const (
	// NavigationIdle means no destination is selected and nothing is tracked.
	NavigationIdle NavigationState = "idle"
	// NavigationRouteComputed means a route exists for a chosen destination.
	NavigationRouteComputed NavigationState = "route_computed"
	// NavigationNavigating means live tracking against the route is running.
	NavigationNavigating NavigationState = "navigating"
)

// NavigationEventType classifies navigation lifecycle events.
type NavigationEventType string

const (
	// NavigationEventArrived fires once when the user reaches the destination.
	// Explicit cancellation performs the same cleanup but emits no event.
	NavigationEventArrived NavigationEventType = "arrived"
)

// NavigationEvent is a one-time lifecycle signal from the session.
type NavigationEvent struct {
	Type     NavigationEventType `json:"type"`
	Position entity.Coordinate   `json:"position"`
}

// NavigationStatus is a read-only snapshot of the session.
type NavigationStatus struct {
	State        NavigationState     `json:"state"`
	Destination  *entity.Coordinate  `json:"destination,omitempty"`
	TraveledPath []entity.Coordinate `json:"traveled_path"`
	Route        *entity.RouteResult `json:"route,omitempty"`
	LastPosition *entity.Coordinate  `json:"last_position,omitempty"`
}

// NavigationUsecase coordinates one live guidance session. There is one
// session per process; requests for a new route replace the previous one.
type NavigationUsecase interface {
	// SetRoute installs a computed route for a destination, moving
	// Idle|RouteComputed -> RouteComputed. Rejected while navigating.
	SetRoute(route *entity.RouteResult, destination entity.Coordinate) error

	// ClearRoute drops the computed route, moving RouteComputed -> Idle.
	// No-op when already Idle; rejected while navigating.
	ClearRoute() error

	// Start begins guidance, moving RouteComputed -> Navigating. If no
	// position can be resolved the start is rejected and the state stays
	// RouteComputed.
	Start(ctx context.Context) error

	// ReportPosition feeds one client position sample to the tracker.
	ReportPosition(coord entity.Coordinate) error

	// Stop cancels guidance with the same cleanup as arrival but no
	// completion signal. Safe to call in any state.
	Stop()

	// Status returns a snapshot of the session.
	Status() *NavigationStatus

	// Events returns the stream of one-time lifecycle signals.
	Events() <-chan NavigationEvent
}
