package usecase

import (
	"context"
	"time"

	"wayfinder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CameraMode names what the camera is currently anchored to.
type CameraMode string

const (
	// CameraFitRoute means the viewport is fitted to the route bounds.
	CameraFitRoute CameraMode = "fit_route"
	// CameraCenterPoi means the viewport is centered on the selected POI.
	CameraCenterPoi CameraMode = "center_poi"
	// CameraCenterUser means the viewport is centered on the user location.
	CameraCenterUser CameraMode = "center_user"
	// CameraFollow means the viewport tracks live navigation samples.
	CameraFollow CameraMode = "follow"
)

// CameraUpdate describes one viewport change pushed to observers.
type CameraUpdate struct {
	Mode   CameraMode        `json:"mode"`
	Center entity.Coordinate `json:"center"`
	Zoom   float64           `json:"zoom"`

	// Bound and Padding are set for fit_route updates only.
	Bound   *orb.Bound     `json:"bound,omitempty"`
	Padding *CameraPadding `json:"padding,omitempty"`

	// Transition is the animation length hint for the renderer.
	Transition time.Duration `json:"transition"`
}

// CameraPadding reserves viewport space for overlaid panels, in pixels.
type CameraPadding struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// Marker is one rendered POI marker. Markers are keyed by POI ID so that
// refreshing the POI set never resets selection or hover state.
type Marker struct {
	PoiID    uuid.UUID   `json:"poi_id"`
	Poi      *entity.POI `json:"poi"`
	Selected bool        `json:"selected"`
}

// MapViewUsecase keeps the rendered viewport consistent with application
// intent and owns camera state exclusively.
type MapViewUsecase interface {
	// SetPois replaces the marker working set, preserving marker identity and
	// selection for unchanged POI IDs.
	SetPois(pois []*entity.POI)

	// SetRoute fits the viewport to the route bounds with asymmetric padding.
	// A nil route clears the route and releases the camera.
	SetRoute(route *entity.RouteResult)

	// SelectPoi marks the POI selected and, when no route is active, centers
	// the camera on it.
	SelectPoi(id uuid.UUID) error

	// SetUserLocation records the user position and, when no route is active,
	// centers the camera on it.
	SetUserLocation(coord entity.Coordinate)

	// FollowLocation re-centers on a live navigation sample with a short
	// transition.
	FollowLocation(coord entity.Coordinate)

	// ProbeClick reverse-geocodes a click on empty map space. The result, if
	// any, is a transient POI; (nil, nil) means nothing is known there.
	ProbeClick(ctx context.Context, coord entity.Coordinate) (*entity.POI, error)

	// Markers returns the current marker set.
	Markers() []*Marker

	// Camera returns the last camera update, or nil before any trigger fired.
	Camera() *CameraUpdate

	// Observe registers a callback invoked on every camera update.
	Observe(fn func(CameraUpdate))
}
