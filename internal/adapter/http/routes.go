// Package http provides the HTTP handler layer for the trip optimizer API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the trip endpoints under /api/v1 and the health
// probe at the root, outside the versioned prefix.
func RegisterRoutes(e *echo.Echo, h *TripHandler) {
	e.GET("/health", h.Health)

	trips := e.Group("/api/v1/trips")
	trips.POST("/optimize", h.OptimizeTrip)
	trips.POST("/plan", h.PlanTrip)
}
