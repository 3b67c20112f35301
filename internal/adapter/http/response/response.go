// Package response builds the JSON bodies the trip optimizer API sends
// back. Every error response carries the same shape, so clients can
// switch on a machine-readable code no matter which endpoint failed.
package response

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	// Code identifies the failure class for programmatic handling
	Code string `json:"code"`

	// Message describes the failure for humans
	Message string `json:"message"`

	// Details maps request fields to their validation failures
	Details map[string]string `json:"details,omitempty"`
}

// Error codes carried in ErrorDetail.Code.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeSourcesDown     = "offer_sources_unavailable"
	CodeTimeout         = "deadline_exceeded"
	CodeCancelled       = "request_cancelled"
	CodeInternal        = "internal_error"
)

// Default messages for failures without a more specific one.
const (
	MsgInvalidRequestBody = "Request body is not valid JSON"
	MsgValidationFailed   = "Request failed validation"
	MsgSourcesDown        = "All offer sources are currently unavailable"
	MsgTimeout            = "Optimization did not finish within the deadline"
	MsgCancelled          = "Request was cancelled before completion"
	MsgInternal           = "An unexpected error occurred"
)
