package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// write sends an ErrorDetail body with the given status.
func write(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, &ErrorDetail{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// InvalidRequestBody reports a body that failed to bind (400).
func InvalidRequestBody(c echo.Context) error {
	return write(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError reports per-field validation failures (400).
func ValidationError(c echo.Context, details map[string]string) error {
	return write(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

// ValidationErrorWithMessage reports a validation failure that is not
// tied to a single field (400).
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return write(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

// ServiceUnavailable reports that no offer source produced a result (503).
func ServiceUnavailable(c echo.Context) error {
	return write(c, http.StatusServiceUnavailable, CodeSourcesDown, MsgSourcesDown, nil)
}

// GatewayTimeout reports an exceeded optimization deadline (504).
func GatewayTimeout(c echo.Context) error {
	return write(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// RequestCancelled reports a request the client abandoned (504).
func RequestCancelled(c echo.Context) error {
	return write(c, http.StatusGatewayTimeout, CodeCancelled, MsgCancelled, nil)
}

// InternalServerError reports an unexpected failure without leaking its
// cause to the client (500).
func InternalServerError(c echo.Context) error {
	return write(c, http.StatusInternalServerError, CodeInternal, MsgInternal, nil)
}
