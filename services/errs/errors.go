// Package errs defines the error kinds shared by all service packages so the
// HTTP layer can map every vertical to the same status codes.
package errs

import "fmt"

// ValidationError reports missing or malformed caller input. Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an absent unit, account or booking.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// AuthorizationError reports a wrong role or acting on a resource the actor
// does not own.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

func Authorization(message string) error {
	return &AuthorizationError{Message: message}
}

// ConflictError reports an overlapping active booking.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func Conflict(message string) error {
	return &ConflictError{Message: message}
}

// UpstreamError reports a failed geocoding/routing call. The HTTP layer maps
// it to a validation-shaped response asking the user to recheck input, never
// to a 5xx.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string { return e.Message }

func Upstream(message string) error {
	return &UpstreamError{Message: message}
}
