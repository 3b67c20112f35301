package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger emits one structured line per request once the handler
// chain finishes. Server errors log at error level and client errors at
// warn, so a quiet log means a healthy service.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Hand the error to echo now so the logged status is the
				// one the client actually received.
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			levelFor(log, res.Status).
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("duration", time.Since(start)).
				Int64("bytes_out", res.Size).
				Str("remote_ip", c.RealIP()).
				Msg("request handled")

			// The error was already handled via c.Error above.
			return nil
		}
	}
}

// levelFor picks the log level matching a response status.
func levelFor(log zerolog.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}
