package errors

import (
	"fmt"
	"net/http"
)

// AppError is a tagged request failure: a client error (4xx) or a server
// error (5xx) plus the message reported to the caller.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"` // Internal error for logging
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped internal error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest creates a 400 error for malformed client input
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// QueryFailed creates a 500 error for a failed database query
func QueryFailed(err error) *AppError {
	return New(http.StatusInternalServerError, fmt.Sprintf("Database query failed: %v", err), err)
}

// Internal creates a 500 error
func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
