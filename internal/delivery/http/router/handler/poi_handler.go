package handler

import (
	"log/slog"
	"net/http"

	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PoiHandlerParams holds dependencies for PoiHandler, injected by Fx.
type PoiHandlerParams struct {
	fx.In

	PoiUC     usecase.PoiUsecase
	MapViewUC usecase.MapViewUsecase
	Logger    *slog.Logger
}

// PoiHandler holds dependencies for POI-related handlers
type PoiHandler struct {
	poiUC     usecase.PoiUsecase
	mapViewUC usecase.MapViewUsecase
	logger    *slog.Logger
}

// NewPoiHandler is the constructor for PoiHandler
func NewPoiHandler(params PoiHandlerParams) *PoiHandler {
	return &PoiHandler{
		poiUC:     params.PoiUC,
		mapViewUC: params.MapViewUC,
		logger:    params.Logger,
	}
}

// CreatePoiRequest represents the request body for submitting a POI
type CreatePoiRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Category    string   `json:"category" validate:"required,max=100"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	City        string   `json:"city" validate:"max=100"`
	Contact     string   `json:"contact" validate:"max=255"`
	ImageURLs   []string `json:"image_urls"`
	Amenities   []string `json:"amenities"`
	Keywords    []string `json:"keywords"`
	Latitude    float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64  `json:"longitude" validate:"min=-180,max=180"`
}

// ListPois returns the map working set via the locality-first fallback chain
// and refreshes the marker arena.
func (h *PoiHandler) ListPois(c echo.Context) error {
	pois, err := h.poiUC.LoadMapPois(c.Request().Context(), sessionFrom(c))
	if err != nil {
		return err
	}

	h.mapViewUC.SetPois(pois)

	return response.Success(c, http.StatusOK, pois, "POIs retrieved successfully")
}

// GetPoi returns one POI detail and records a VIEW access event.
func (h *PoiHandler) GetPoi(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid POI ID")
	}

	poi, err := h.poiUC.GetPoi(c.Request().Context(), sessionFrom(c), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, poi, "POI retrieved successfully")
}

// CreatePoi submits a new POI, pending moderation.
func (h *PoiHandler) CreatePoi(c echo.Context) error {
	var req CreatePoiRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid POI input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreatePoiInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Contact:     req.Contact,
		ImageURLs:   req.ImageURLs,
		Amenities:   req.Amenities,
		Keywords:    req.Keywords,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	poi, err := h.poiUC.CreatePoi(c.Request().Context(), sessionFrom(c), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, poi, "POI submitted successfully")
}

// SharePoiQR renders a share QR code for a POI.
func (h *PoiHandler) SharePoiQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid POI ID")
	}

	png, err := h.poiUC.GeneratePoiShareQR(c.Request().Context(), sessionFrom(c), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ActivatePoi approves a pending POI. Admin only.
func (h *PoiHandler) ActivatePoi(c echo.Context) error {
	return h.setActive(c, true)
}

// DeactivatePoi rejects or retires a POI. Admin only.
func (h *PoiHandler) DeactivatePoi(c echo.Context) error {
	return h.setActive(c, false)
}

func (h *PoiHandler) setActive(c echo.Context, active bool) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid POI ID")
	}

	if err := h.poiUC.SetPoiActive(c.Request().Context(), sessionFrom(c), id, active); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "POI moderation state updated")
}

// DeletePoi removes a POI permanently. Admin only.
func (h *PoiHandler) DeletePoi(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid POI ID")
	}

	if err := h.poiUC.DeletePoi(c.Request().Context(), sessionFrom(c), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "POI deleted")
}
