package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthStatus is the health endpoint body.
type HealthStatus struct {
	Status string `json:"status"`
}

// Health reports the service as reachable.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthStatus{Status: "ok"})
}

// OptimizedPlan sends a ranked trip plan (200). The plan is the body;
// no envelope wraps it.
func OptimizedPlan(c echo.Context, plan interface{}) error {
	return c.JSON(http.StatusOK, plan)
}
