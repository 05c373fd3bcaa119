package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapViewUC usecase.MapViewUsecase
	Logger    *slog.Logger
}

// MapHandler holds dependencies for map viewport handlers
type MapHandler struct {
	mapViewUC usecase.MapViewUsecase
	logger    *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		mapViewUC: params.MapViewUC,
		logger:    params.Logger,
	}
}

// MapState bundles the marker set with the current camera.
type MapState struct {
	Markers []*usecase.Marker     `json:"markers"`
	Camera  *usecase.CameraUpdate `json:"camera,omitempty"`
}

// State returns the rendered markers and the last camera update.
func (h *MapHandler) State(c echo.Context) error {
	state := MapState{
		Markers: h.mapViewUC.Markers(),
		Camera:  h.mapViewUC.Camera(),
	}

	return response.Success(c, http.StatusOK, state, "Map state")
}

// SelectPoi marks a POI selected on the map.
func (h *MapHandler) SelectPoi(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid POI ID")
	}

	if err := h.mapViewUC.SelectPoi(id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "POI selected")
}

// ReverseGeocode probes a clicked map coordinate. A null data field means
// nothing is known at that location.
func (h *MapHandler) ReverseGeocode(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid lat parameter")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid lng parameter")
	}

	coord := entity.Coordinate{Latitude: lat, Longitude: lng}

	poi, err := h.mapViewUC.ProbeClick(c.Request().Context(), coord)
	if err != nil {
		return err
	}

	if poi == nil {
		return response.Success(c, http.StatusOK, nil, "Nothing known at this location")
	}

	return response.Success(c, http.StatusOK, poi, "Location resolved")
}
