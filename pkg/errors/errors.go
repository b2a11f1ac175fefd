// Package errors defines the application fault taxonomy and the single
// translation point from faults to client-facing error responses.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"pdf-processing-api/internal/domain"
)

// Kind represents different categories of faults
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindInternal        Kind = "internal"
)

// Fallback messages substituted when a fault carries no message of its own.
const (
	fallbackInvalidArgument = "Invalid argument provided"
	fallbackInternal        = "An internal server error occurred"
	fallbackUnexpected      = "An unexpected error occurred"
)

// AppError represents a classified application fault
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewInvalidArgumentError creates a new client-caused fault
func NewInvalidArgumentError(message string) *AppError {
	return &AppError{
		Kind:    KindInvalidArgument,
		Message: message,
	}
}

// NewInternalError creates a new server-caused fault
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Message: message,
		Cause:   cause,
	}
}

// IsKind reports whether the error is a classified fault of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// Translate maps a fault raised during request handling to the error
// envelope and HTTP status returned to the caller. Classification order:
// invalid-argument faults map to 400, other classified faults to 500, and
// anything unrecognized falls through to 500 with its own fallback message.
// Translate is the last line of defense and never fails: a nil error or a
// fault with no message degrades to the fallback for its category.
func Translate(err error, path string) (*domain.ErrorResponse, int) {
	status := http.StatusInternalServerError
	message := ""
	fallback := fallbackUnexpected

	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		message = appErr.Message
		if appErr.Kind == KindInvalidArgument {
			status = http.StatusBadRequest
			fallback = fallbackInvalidArgument
		} else {
			fallback = fallbackInternal
		}
	case err != nil:
		message = err.Error()
	}

	if message == "" {
		message = fallback
	}

	return &domain.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       path,
	}, status
}
