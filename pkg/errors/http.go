package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that knows how it should be rendered to an HTTP client.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
	Details    any
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError builds an HTTPError whose error code mirrors the HTTP status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		Code:       statusCode,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails returns a copy of e carrying per-field details.
func (e *HTTPError) WithDetails(details any) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}

// ErrTooManyRequests is rendered by the rate limiting middleware.
var ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "Too many requests, please slow down")
