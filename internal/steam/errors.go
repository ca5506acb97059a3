package steam

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for directory API operations.
var (
	// ErrAPIUnavailable is returned when the request never produced a response
	// (DNS failure, refused connection, timeout).
	ErrAPIUnavailable = errors.New("steam API unavailable")

	// ErrInvalidResponse is returned when the response body is not valid JSON.
	ErrInvalidResponse = errors.New("invalid API response")

	// ErrMissingResponse is returned when the body has no "response" object.
	ErrMissingResponse = errors.New("response object missing from server list")

	// ErrNoServers is returned when the "response" object has no "servers" field.
	// Steam does this for empty results as well as for some upstream errors.
	ErrNoServers = errors.New("servers field missing from server list")

	// ErrInvalidKey is returned when the API rejects the key.
	ErrInvalidKey = errors.New("invalid API key")

	// ErrRateLimitExceeded is returned when the API rate limit is exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrInvalidAddress is returned by ParseAddr for malformed server addresses.
	ErrInvalidAddress = errors.New("invalid server address")
)

// APIError represents a non-200 response from the directory API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("steam API error (status %d): %s", e.StatusCode, e.Message)
}

// Is lets errors.Is match the status specific sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrInvalidKey:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrRateLimitExceeded:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// IsSoftFailure reports whether err is a well-formed response that carried
// no server list. Callers retry these sooner than transport failures.
func IsSoftFailure(err error) bool {
	return errors.Is(err, ErrNoServers) || errors.Is(err, ErrMissingResponse)
}
