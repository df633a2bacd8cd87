// Package errors defines the application error taxonomy shared by every
// entity service: validation failures carry a structured details payload,
// not-found failures name the missing resource, and anything else surfaces
// as an internal error at the boundary.
package errors

import (
	"fmt"
	"net/http"
)

// Error kinds reported in HTTP error bodies.
const (
	KindValidation = "validation"
	KindNotFound   = "not_found"
	KindInternal   = "internal"
)

// AppError is implemented by errors the HTTP boundary knows how to map to a
// status code and response body.
type AppError interface {
	error
	HTTPCode() int // HTTP status code
	Kind() string  // machine-readable error kind
	Details() any  // structured details payload (optional)
}

// ValidationError reports a client-attributable problem with a payload:
// malformed or missing fields, broken invariants, duplicate unique keys,
// dangling foreign keys, or a delete blocked by dependent records.
type ValidationError struct {
	message string
	details any
}

// NewValidationError creates a validation error. details may be a list of
// offending field names, a field→reason map, or nil.
func NewValidationError(message string, details any) *ValidationError {
	return &ValidationError{message: message, details: details}
}

func (e *ValidationError) Error() string { return e.message }

// HTTPCode returns 400.
func (e *ValidationError) HTTPCode() int { return http.StatusBadRequest }

// Kind returns the validation kind.
func (e *ValidationError) Kind() string { return KindValidation }

// Details returns the structured details payload.
func (e *ValidationError) Details() any { return e.details }

// NotFoundError reports an unknown id on get, update, or delete.
type NotFoundError struct {
	resource string
	details  any
}

// NewNotFoundError creates a not-found error for the named resource.
func NewNotFoundError(resource string, details any) *NotFoundError {
	return &NotFoundError{resource: resource, details: details}
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s not found", e.resource) }

// HTTPCode returns 404.
func (e *NotFoundError) HTTPCode() int { return http.StatusNotFound }

// Kind returns the not-found kind.
func (e *NotFoundError) Kind() string { return KindNotFound }

// Details returns the structured details payload.
func (e *NotFoundError) Details() any { return e.details }
