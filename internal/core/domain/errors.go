package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from remote failures (TransportError, ServiceError).
var (
	// ErrInvalidSetting indicates a configuration value failed validation.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrUnknownSetting indicates a configuration key is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrNotConfigured indicates a required service was not wired.
	ErrNotConfigured = errors.New("service not configured")
)

// TransportError reports that the remote service could not be reached or
// that the exchange could not be completed: DNS, dial, timeout, cancellation
// or an unreadable response body.
type TransportError struct {
	// Op is the logical operation ("query", "suggest", "index").
	Op string

	// Err is the underlying cause.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport error: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError reports that the remote service was reached but answered
// with a non-success status.
type ServiceError struct {
	// Op is the logical operation ("query", "suggest", "index").
	Op string

	// StatusCode is the HTTP status returned by the service.
	StatusCode int

	// Body holds the start of the response body, if any.
	Body string
}

func (e *ServiceError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: service returned status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: service returned status %d: %s", e.Op, e.StatusCode, e.Body)
}

// IsTransportError checks if the error chain contains a TransportError.
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsServiceError checks if the error chain contains a ServiceError.
func IsServiceError(err error) bool {
	var serviceErr *ServiceError
	return errors.As(err, &serviceErr)
}

// StatusCode returns the HTTP status carried by a ServiceError in the chain,
// or 0 if there is none.
func StatusCode(err error) int {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr.StatusCode
	}
	return 0
}
