package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the stable, machine-checkable category of a request error. It is
// what the API echoes back to clients; the wrapped cause never is.
type Kind string

const (
	// KindValidation covers bad or missing request fields
	KindValidation Kind = "validation"
	// KindAuth covers missing, malformed, invalid, expired or revoked credentials
	KindAuth Kind = "auth"
	// KindForbidden covers administratively disabled subjects
	KindForbidden Kind = "forbidden"
	// KindNotFound covers absent graphs or subjects
	KindNotFound Kind = "not_found"
	// KindConflict covers duplicate registration
	KindConflict Kind = "conflict"
	// KindStorage covers graph store failures
	KindStorage Kind = "storage"
	// KindProvider covers identity provider failures
	KindProvider Kind = "provider"
)

// Error is a request error with a stable kind, a client-safe message and an
// optional wrapped cause. The cause is for server logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the kind to the response status code
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		// Duplicate registration reports 400, matching the public API contract
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// New creates a request error of the given kind
func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a bad-request error
func Validation(message string) *Error {
	return New(KindValidation, message, nil)
}

// Auth creates an unauthorized error
func Auth(message string, err error) *Error {
	return New(KindAuth, message, err)
}

// Forbidden creates a forbidden error
func Forbidden(message string) *Error {
	return New(KindForbidden, message, nil)
}

// NotFound creates a not-found error
func NotFound(message string) *Error {
	return New(KindNotFound, message, nil)
}

// Conflict creates a conflict error
func Conflict(message string) *Error {
	return New(KindConflict, message, nil)
}

// Storage creates a graph store error
func Storage(message string, err error) *Error {
	return New(KindStorage, message, err)
}

// Provider creates an identity provider error
func Provider(message string, err error) *Error {
	return New(KindProvider, message, err)
}

// KindOf returns the kind of err, or KindStorage for unrecognized errors so
// that raw causes never leak a misleading category to clients.
func KindOf(err error) Kind {
	var reqErr *Error
	if errors.As(err, &reqErr) {
		return reqErr.Kind
	}
	return KindStorage
}

// IsKind checks whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	var reqErr *Error
	if errors.As(err, &reqErr) {
		return reqErr.Kind == kind
	}
	return false
}

// AsError extracts the request error from err, wrapping unrecognized errors
// as storage failures with a generic client message.
func AsError(err error) *Error {
	var reqErr *Error
	if errors.As(err, &reqErr) {
		return reqErr
	}
	return Storage("internal error", err)
}
