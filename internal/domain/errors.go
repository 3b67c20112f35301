package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the trip optimizer domain.
var (
	// ErrInvalidRequest indicates an optimization request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidConstraints indicates a misconfigured Constraints value.
	// This is the only error class that aborts an optimization run before
	// any candidate is produced.
	ErrInvalidConstraints = errors.New("invalid constraints")

	// ErrUnknownTopology indicates a trip topology that is not supported.
	ErrUnknownTopology = errors.New("unknown topology")

	// ErrProviderTimeout indicates an offer source did not respond in time.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderUnavailable indicates an offer source could not be reached.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrAllProvidersFailed indicates that every queried offer source failed,
	// so no leg has any offers to optimize over.
	ErrAllProvidersFailed = errors.New("all providers failed")
)

// ProviderError wraps an error from a named offer source with retry
// classification.
type ProviderError struct {
	// Provider is the name of the offer source that failed.
	Provider string

	// Err is the underlying error.
	Err error

	// Retryable indicates whether the operation may succeed on retry.
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable ProviderError.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider:  provider,
		Err:       err,
		Retryable: false,
	}
}

// NewRetryableProviderError creates a ProviderError that may be retried.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider:  provider,
		Err:       err,
		Retryable: true,
	}
}

// NewProviderTimeoutError creates a retryable timeout error for a provider.
func NewProviderTimeoutError(provider string) *ProviderError {
	return &ProviderError{
		Provider:  provider,
		Err:       ErrProviderTimeout,
		Retryable: true,
	}
}

// NewProviderUnavailableError creates a retryable unavailability error for a provider.
func NewProviderUnavailableError(provider string) *ProviderError {
	return &ProviderError{
		Provider:  provider,
		Err:       ErrProviderUnavailable,
		Retryable: true,
	}
}

// ValidationError describes a field-level validation failure.
type ValidationError struct {
	// Field is the name of the invalid field.
	Field string

	// Message describes why the field is invalid.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a ValidationError for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// WrapInvalidRequest wraps a formatted message with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// WrapInvalidConstraints wraps a formatted message with ErrInvalidConstraints.
func WrapInvalidConstraints(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConstraints, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsInvalidConstraints reports whether err is or wraps ErrInvalidConstraints.
func IsInvalidConstraints(err error) bool {
	return errors.Is(err, ErrInvalidConstraints)
}

// IsAllProvidersFailed reports whether err is or wraps ErrAllProvidersFailed.
func IsAllProvidersFailed(err error) bool {
	return errors.Is(err, ErrAllProvidersFailed)
}

// IsProviderTimeout reports whether err is or wraps ErrProviderTimeout.
func IsProviderTimeout(err error) bool {
	return errors.Is(err, ErrProviderTimeout)
}
