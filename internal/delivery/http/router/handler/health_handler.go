// Package handler contains the echo handlers of the HTTP delivery.
package handler

import (
	"net/http"

	"wayfinder/internal/delivery/http/middleware"
	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service healthy")
}

// sessionFrom returns the authenticated session, or nil for anonymous
// callers.
func sessionFrom(c echo.Context) *entity.Session {
	session, _ := c.Get(middleware.SessionContextKey).(*entity.Session)

	return session
}
