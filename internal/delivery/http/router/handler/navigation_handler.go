package handler

import (
	"log/slog"
	"net/http"

	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NavigationHandlerParams holds dependencies for NavigationHandler, injected by Fx.
type NavigationHandlerParams struct {
	fx.In

	NavUC     usecase.NavigationUsecase
	MapViewUC usecase.MapViewUsecase
	Logger    *slog.Logger
}

// NavigationHandler holds dependencies for the live guidance handlers
type NavigationHandler struct {
	navUC     usecase.NavigationUsecase
	mapViewUC usecase.MapViewUsecase
	logger    *slog.Logger
}

// NewNavigationHandler is the constructor for NavigationHandler
func NewNavigationHandler(params NavigationHandlerParams) *NavigationHandler {
	return &NavigationHandler{
		navUC:     params.NavUC,
		mapViewUC: params.MapViewUC,
		logger:    params.Logger,
	}
}

// PositionRequest is one client position sample.
type PositionRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// Start begins guidance on the installed route.
func (h *NavigationHandler) Start(c echo.Context) error {
	if err := h.navUC.Start(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.navUC.Status(), "Navigation started")
}

// Position feeds one position sample. Outside of an active navigation the
// sample only moves the map's user location.
func (h *NavigationHandler) Position(c echo.Context) error {
	var req PositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	coord := entity.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}

	if err := h.navUC.ReportPosition(coord); err != nil {
		return err
	}

	// During navigation the camera follows accepted samples on its own.
	if h.navUC.Status().State != usecase.NavigationNavigating {
		h.mapViewUC.SetUserLocation(coord)
	}

	return response.Success(c, http.StatusOK, nil, "Position recorded")
}

// Stop cancels guidance and releases the route from the map.
func (h *NavigationHandler) Stop(c echo.Context) error {
	h.navUC.Stop()
	h.mapViewUC.SetRoute(nil)

	return response.Success(c, http.StatusOK, h.navUC.Status(), "Navigation stopped")
}

// ClearRoute drops the computed route without starting guidance.
func (h *NavigationHandler) ClearRoute(c echo.Context) error {
	if err := h.navUC.ClearRoute(); err != nil {
		return err
	}

	h.mapViewUC.SetRoute(nil)

	return response.Success(c, http.StatusOK, nil, "Route cleared")
}

// State returns a snapshot of the guidance session.
func (h *NavigationHandler) State(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.navUC.Status(), "Navigation state")
}

// Events polls for pending lifecycle events without blocking.
func (h *NavigationHandler) Events(c echo.Context) error {
	events := make([]usecase.NavigationEvent, 0)

	for {
		select {
		case event := <-h.navUC.Events():
			events = append(events, event)
		default:
			return response.Success(c, http.StatusOK, events, "Navigation events")
		}
	}
}
