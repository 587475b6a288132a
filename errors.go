package hibp

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/haveibeenpwned/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingUserAgent is returned when the client is configured with an
	// empty user agent. The API rejects requests without one.
	ErrMissingUserAgent = errors.New("user agent is required")

	// ErrBadRequest is returned when the request format is invalid (400).
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized is returned when the API key is missing or invalid (401).
	ErrUnauthorized = errors.New("missing or invalid API key")

	// ErrForbidden is returned when access is forbidden, typically a missing
	// or rejected user agent (403).
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when the requested resource does not exist (404).
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded (429).
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServiceUnavailable is returned when the service is unavailable (503).
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrInvalidPrefix is returned when a hash prefix is not exactly 5
	// characters. Raised before any network call.
	ErrInvalidPrefix = errors.New("hash prefix must be exactly 5 characters")
)

// HIBPError is implemented by all SDK errors.
type HIBPError interface {
	error
	HIBPError() // marker method
}

// APIError represents an HTTP error status from the API.
type APIError struct {
	StatusCode int
	Message    string

	// RetryAfter is the server-provided retry hint on 429 responses.
	// Nil when the server sent none.
	RetryAfter *time.Duration
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// HIBPError implements the HIBPError interface.
func (e *APIError) HIBPError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return target == ErrBadRequest
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusForbidden:
		return target == ErrForbidden
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	case http.StatusServiceUnavailable:
		return target == ErrServiceUnavailable
	}
	return false
}

// NetworkError represents a transport-level failure. Timeouts are the same
// kind with Timeout set, not a distinct error type.
type NetworkError struct {
	Err     error
	URL     string
	Timeout bool
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timed out: %v", e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HIBPError implements the HIBPError interface.
func (e *NetworkError) HIBPError() {}

// wrapError converts internal API errors to public errors so that
// errors.Is() checks work with the public sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			RetryAfter: apiErr.RetryAfter,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Timeout: netErr.Timeout,
		}
	}

	return err
}

// isNotFound reports whether an internal error is a 404. Collection-style
// lookups convert these into empty results.
func isNotFound(err error) bool {
	var apiErr *api.Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
