package pokeapi

import (
	"errors"
	"fmt"
	"net/url"
	"os"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a transport failure (DNS, refused, timeout, reset)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeNotFound indicates a single-resource lookup returned a non-success status
	ErrTypeNotFound
	// ErrTypeHTTP indicates a non-success status on a list request
	ErrTypeHTTP
	// ErrTypeParse indicates a body that could not be decoded
	ErrTypeParse
	// ErrTypeValidation indicates invalid request arguments
	ErrTypeValidation
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeNotFound:
		return "Not Found"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeValidation:
		return "Validation Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Kind is the user-level classification of a failed request.
type Kind int

const (
	// KindNotFound is a lookup that named nothing.
	KindNotFound Kind = iota
	// KindNetworkOrParse covers every other request or decoding failure.
	KindNetworkOrParse
)

// APIError represents an error that occurred talking to the catalog API
type APIError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	URL        string    // Request URL (if known)
	Timeout    bool      // Transport error was a timeout
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *APIError) Unwrap() error {
	return e.Err
}

// Kind collapses the error type to the two kinds surfaced to users.
func (e *APIError) Kind() Kind {
	if e.Type == ErrTypeNotFound {
		return KindNotFound
	}
	return KindNetworkOrParse
}

// NewNetworkError creates a transport-level error
func NewNetworkError(message, rawURL string, err error) *APIError {
	var urlErr *url.Error
	timeout := os.IsTimeout(err) || (errors.As(err, &urlErr) && urlErr.Timeout())
	return &APIError{
		Type:    ErrTypeNetwork,
		Message: message,
		URL:     rawURL,
		Timeout: timeout,
		Err:     err,
	}
}

// NewNotFoundError creates a lookup miss
func NewNotFoundError(rawURL string, statusCode int) *APIError {
	return &APIError{
		Type:       ErrTypeNotFound,
		Message:    fmt.Sprintf("no entry at %s", rawURL),
		StatusCode: statusCode,
		URL:        rawURL,
	}
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, rawURL string) *APIError {
	return &APIError{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
		URL:        rawURL,
	}
}

// NewParseError creates a parsing error
func NewParseError(message, rawURL string, err error) *APIError {
	return &APIError{
		Type:    ErrTypeParse,
		Message: message,
		URL:     rawURL,
		Err:     err,
	}
}

// NewValidationError creates a validation error
func NewValidationError(err error) *APIError {
	return &APIError{
		Type:    ErrTypeValidation,
		Message: err.Error(),
		Err:     err,
	}
}

func typeOf(err error) (ErrorType, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type, true
	}
	return 0, false
}

// IsNotFound checks if an error is a lookup miss
func IsNotFound(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeNotFound
}

// IsNetworkError checks if an error is a transport failure
func IsNetworkError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeNetwork
}

// IsHTTPError checks if an error is a non-success status on a list request
func IsHTTPError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeHTTP
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeParse
}

// KindOf classifies any error; errors not produced by this package count
// as network-or-parse failures.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind()
	}
	return KindNetworkOrParse
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}

	switch apiErr.Type {
	case ErrTypeNetwork:
		if apiErr.Timeout {
			return "API not responding (timeout)"
		}
		return "Network error - check connection"
	case ErrTypeNotFound:
		return "No matching entry"
	case ErrTypeHTTP:
		return fmt.Sprintf("API error (HTTP %d)", apiErr.StatusCode)
	case ErrTypeParse:
		return "Failed to parse API response"
	default:
		return apiErr.Message
	}
}
