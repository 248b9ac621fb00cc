// Package apperr defines the error taxonomy every endpoint translates
// failures into: validation errors, not-found, authorization failures, and
// everything else as an internal server error.
package apperr

import "net/http"

type Error struct {
	Status  int    `json:"-"`
	Type    string `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Type: "ValidationError", Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Type: "ResourceNotFoundError", Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Type: "AuthorizationError", Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Type: "AuthorizationError", Message: message}
}

func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Type: "InternalServerError", Message: message}
}

// From passes typed errors through and wraps anything else as internal.
func From(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	msg := "An unexpected error occurred"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Internal(msg)
}
