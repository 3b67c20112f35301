// Package middleware carries the cross-cutting HTTP concerns: request
// identity, request logging, and panic containment. Handlers stay free
// of all three.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ctxKeyRequestID is the echo context key holding the request ID.
const ctxKeyRequestID = "request_id"

// RequestID tags every request with a correlation ID. A client-supplied
// X-Request-ID wins, so IDs survive proxy hops; otherwise a fresh UUID
// is minted. The ID is echoed back on the response for client-side
// correlation.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			c.Set(ctxKeyRequestID, id)
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			return next(c)
		}
	}
}

// GetRequestID returns the request's correlation ID, or "" when the
// RequestID middleware did not run.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(ctxKeyRequestID).(string)
	return id
}
