// Package apperrors defines the typed failures raised by the service layer.
// Handlers map them to HTTP responses in exactly one place; anything that is
// not an *Error is treated as an internal failure.
package apperrors

import (
	"errors"
	"net/http"
)

// Error is a failure with a caller-facing message and an HTTP status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with an explicit status code.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// BadRequest reports malformed or missing input.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Unauthorized reports a missing, invalid, or expired credential. The message
// must not reveal which of those it was.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// NotFound reports an operation targeting a resource that does not exist.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict reports a uniqueness violation, such as a duplicate email or a
// duplicate wishlist membership.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// StatusOf returns the HTTP status for err, or 500 for untyped errors.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the caller-facing message for err. Untyped errors get a
// generic message so internals never leak to clients.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal Server Error"
}
