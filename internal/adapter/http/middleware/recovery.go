package middleware

import (
	"fmt"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trip-finder/trip-deal-optimizer/internal/adapter/http/response"
)

// defaultStackSize bounds the captured stack trace.
const defaultStackSize = 4 << 10

// RecoveryConfig tunes panic handling.
type RecoveryConfig struct {
	// StackSize bounds the captured stack trace in bytes. Zero selects
	// the default.
	StackSize int

	// AllGoroutines captures every goroutine's stack instead of only
	// the panicking one.
	AllGoroutines bool
}

// DefaultRecoveryConfig returns the default recovery settings.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{StackSize: defaultStackSize}
}

// Recover turns handler panics into 500 responses. The panic value and
// its stack land in the log; the process keeps serving.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig is Recover with custom stack capture settings.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	if config.StackSize <= 0 {
		config.StackSize = defaultStackSize
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				stack := make([]byte, config.StackSize)
				stack = stack[:runtime.Stack(stack, config.AllGoroutines)]

				log.Error().
					Str("request_id", GetRequestID(c)).
					Str("panic", fmt.Sprint(r)).
					Bytes("stack", stack).
					Msg("handler panicked")

				// The client gets the generic 500 body; the panic detail
				// stays in the log.
				if !c.Response().Committed {
					_ = response.InternalServerError(c)
				}
			}()

			return next(c)
		}
	}
}
