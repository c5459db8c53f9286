package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// FieldError describes a single failing input field. Validation responses
// enumerate every failing field rather than stopping at the first.
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// AppError is the typed error used across service boundaries. Status is the
// HTTP status the error maps to; Err is the internal cause and is never
// serialized to clients.
type AppError struct {
	Status  int          `json:"-"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// Unwrap supports errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with an explicit HTTP status.
func New(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

// NewValidation creates a 400 error carrying field-level detail.
func NewValidation(message string, fields []FieldError) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message, Fields: fields}
}

// NewNotFound creates a 404 error.
func NewNotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

// NewConflict creates a 409 error.
func NewConflict(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

// Wrap converts an internal failure (database, queue, network) into a 500
// AppError, keeping the cause for logs only.
func Wrap(err error, message string) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError reports whether err is (or wraps) an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, wrapping unknown errors as
// internal so the render boundary always has a status to work with.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal server error")
}
