// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wayfinder/internal/delivery/http/middleware"
	"wayfinder/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PoiHandler        *handler.PoiHandler
	RouteHandler      *handler.RouteHandler
	NavigationHandler *handler.NavigationHandler
	MapHandler        *handler.MapHandler
	TripHandler       *handler.TripHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	poiHandler        *handler.PoiHandler
	routeHandler      *handler.RouteHandler
	navigationHandler *handler.NavigationHandler
	mapHandler        *handler.MapHandler
	tripHandler       *handler.TripHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		poiHandler:        params.PoiHandler,
		routeHandler:      params.RouteHandler,
		navigationHandler: params.NavigationHandler,
		mapHandler:        params.MapHandler,
		tripHandler:       params.TripHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// POI routes. Reads are open to anonymous callers but visibility depends
	// on the session, so authentication is optional there.
	poiGroup := e.Group("/pois")
	poiGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		poiGroup.GET("", r.poiHandler.ListPois)
		poiGroup.GET("/:id", r.poiHandler.GetPoi)
		poiGroup.GET("/:id/qr", r.poiHandler.SharePoiQR)
	}

	// POI submission requires a logged-in user.
	e.POST("/pois", r.poiHandler.CreatePoi, r.authMiddleware.Authenticate)

	// Moderation routes require the admin role.
	adminGroup := e.Group("/pois")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.POST("/:id/activate", r.poiHandler.ActivatePoi)
		adminGroup.POST("/:id/deactivate", r.poiHandler.DeactivatePoi)
		adminGroup.DELETE("/:id", r.poiHandler.DeletePoi)
	}

	// Route computation
	e.POST("/route", r.routeHandler.ComputeRoute, r.authMiddleware.OptionalAuthenticate)

	// Navigation session routes
	navGroup := e.Group("/navigation")
	{
		navGroup.POST("/start", r.navigationHandler.Start)
		navGroup.POST("/position", r.navigationHandler.Position)
		navGroup.POST("/stop", r.navigationHandler.Stop)
		navGroup.DELETE("/route", r.navigationHandler.ClearRoute)
		navGroup.GET("/state", r.navigationHandler.State)
		navGroup.GET("/events", r.navigationHandler.Events)
	}

	// Map viewport routes
	mapGroup := e.Group("/map")
	{
		mapGroup.GET("/state", r.mapHandler.State)
		mapGroup.POST("/select/:id", r.mapHandler.SelectPoi)
	}

	e.GET("/geocode/reverse", r.mapHandler.ReverseGeocode)

	// Trip history requires authentication
	e.GET("/trips", r.tripHandler.ListTrips, r.authMiddleware.Authenticate)
}
