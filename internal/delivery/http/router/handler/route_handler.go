package handler

import (
	"log/slog"
	"net/http"

	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC   usecase.RouteUsecase
	NavUC     usecase.NavigationUsecase
	MapViewUC usecase.MapViewUsecase
	Logger    *slog.Logger
}

// RouteHandler holds dependencies for route computation handlers
type RouteHandler struct {
	routeUC   usecase.RouteUsecase
	navUC     usecase.NavigationUsecase
	mapViewUC usecase.MapViewUsecase
	logger    *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC:   params.RouteUC,
		navUC:     params.NavUC,
		mapViewUC: params.MapViewUC,
		logger:    params.Logger,
	}
}

// RouteResponse wraps a route result with an availability flag so that
// "no route" is a normal answer, not an error.
type RouteResponse struct {
	Available bool `json:"available"`
	Route     any  `json:"route,omitempty"`
}

// ComputeRoute computes a route, installs it on the navigation session and
// fits the map viewport to it.
func (h *RouteHandler) ComputeRoute(c echo.Context) error {
	var input usecase.RouteInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid route input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.routeUC.GetRoute(c.Request().Context(), sessionFrom(c), &input)
	if err != nil {
		return err
	}

	if result == nil {
		return response.Success(c, http.StatusOK, RouteResponse{Available: false}, "Itinerary unavailable")
	}

	if err := h.navUC.SetRoute(result, input.Destination); err != nil {
		return err
	}

	h.mapViewUC.SetRoute(result)

	return response.Success(c, http.StatusOK, RouteResponse{Available: true, Route: result}, "Route computed successfully")
}
