package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents an application error carrying the HTTP status it maps to.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Constructors for the error taxonomy used across the services.

func Validation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message, nil)
}

func Unauthenticated(message string) *Error {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message, nil)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// InvalidState covers business rule violations such as checking out an
// empty cart.
func InvalidState(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// InvalidTransition covers illegal order status changes.
func InvalidTransition(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// Internal wraps an unexpected failure with a safe, client-facing message.
func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}

// Unavailable reports that the backing store cannot serve the request.
func Unavailable(message string) *Error {
	return New(http.StatusServiceUnavailable, message, nil)
}

// From returns err as an *Error, wrapping unknown errors as an internal
// server error so raw messages never leak to clients.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error", err)
}
