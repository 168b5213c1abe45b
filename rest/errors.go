package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// DefaultErrorMessage is used when no better message can be derived from
// the server's error body.
const DefaultErrorMessage = "Something went wrong and your request could not be completed."

// ErrNoResponse is wrapped by the APIError produced when no response was
// obtained at all (DNS failure, connection refused, timeout). Callers can
// detect the condition with errors.Is.
var ErrNoResponse = errors.New("rest: no response from server")

// FieldError is one entry of a structured error body's details sequence:
// a field key and the validation messages recorded against it.
type FieldError struct {
	Key    string   `json:"key"`
	Errors []string `json:"errors"`
}

// APIError is the uniform failure representation returned by this package.
// Every failure a caller sees, whether a transport-level error or a
// non-success status, is a *APIError; raw transport errors never escape.
type APIError struct {
	// Status is the HTTP status code, or 503 when no response was obtained.
	Status int
	// StatusText is the status line text, e.g. "Not Found".
	StatusText string
	// Message is a human-readable description, DefaultErrorMessage when the
	// server provided nothing usable.
	Message string
	// Unauthorized is derived at construction: true iff Status == 401.
	Unauthorized bool
	// Details holds structured per-field errors when the server's body
	// carried them.
	Details []FieldError
	// RawDetails preserves the details payload verbatim for parsers that
	// attach non-standard shapes.
	RawDetails json.RawMessage

	cause error
}

// NewAPIError constructs an APIError. The optional message argument
// overrides DefaultErrorMessage; additional arguments are ignored.
func NewAPIError(status int, statusText string, message ...string) *APIError {
	msg := DefaultErrorMessage
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	return &APIError{
		Status:       status,
		StatusText:   statusText,
		Message:      msg,
		Unauthorized: status == http.StatusUnauthorized,
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.StatusText != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, e.StatusText, e.Message)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Unwrap returns the underlying cause, if any. The 503 fallback produced on
// network failure wraps ErrNoResponse.
func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// IsOkay reports whether an HTTP status code counts as success: true iff
// 200 <= status < 300.
func IsOkay(status int) bool {
	return status >= 200 && status < 300
}
