package handler

import (
	"log/slog"
	"net/http"

	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TripHandlerParams holds dependencies for TripHandler, injected by Fx.
type TripHandlerParams struct {
	fx.In

	TripUC usecase.TripUsecase
	Logger *slog.Logger
}

// TripHandler holds dependencies for trip history handlers
type TripHandler struct {
	tripUC usecase.TripUsecase
	logger *slog.Logger
}

// NewTripHandler is the constructor for TripHandler
func NewTripHandler(params TripHandlerParams) *TripHandler {
	return &TripHandler{
		tripUC: params.TripUC,
		logger: params.Logger,
	}
}

// ListTrips returns the caller's trip history, newest first.
func (h *TripHandler) ListTrips(c echo.Context) error {
	trips, err := h.tripUC.ListTrips(c.Request().Context(), sessionFrom(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, trips, "Trips retrieved successfully")
}
