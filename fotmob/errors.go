package fotmob

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig indicates invalid client configuration. It is returned
// by NewClient only and is not part of the request error taxonomy.
var ErrInvalidConfig = errors.New("invalid fotmob configuration")

// Common errors
var (
	// ErrNetwork indicates a transport failure (DNS, connection, TLS)
	ErrNetwork = errors.New("fotmob: network error")
	// ErrTimeout indicates the configured timeout elapsed
	ErrTimeout = errors.New("fotmob: request timed out")
	// ErrAPI indicates the API answered with a non-200 status
	ErrAPI = errors.New("fotmob: API error")
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("fotmob: resource not found")
	// ErrRateLimited indicates the API rejected the request with 429
	ErrRateLimited = errors.New("fotmob: rate limit exceeded")
	// ErrInvalidResponse indicates the body was not valid JSON
	ErrInvalidResponse = errors.New("fotmob: invalid response")
)

// Kind classifies an Error. The set is closed.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindTimeout
	KindNotFound
	KindRateLimited
	KindClientError
	KindServerError
	KindUnexpectedStatus
	KindInvalidResponse
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindClientError:
		return "client_error"
	case KindServerError:
		return "server_error"
	case KindUnexpectedStatus:
		return "unexpected_status"
	case KindInvalidResponse:
		return "invalid_response"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by Client operations.
// StatusCode and Body are only set for kinds produced from an HTTP response.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fotmob: %s (status %d)", e.Message, e.StatusCode)
	}
	return "fotmob: " + e.Message
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the package sentinels. NotFound and RateLimited also match ErrAPI.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrTimeout:
		return e.Kind == KindTimeout
	case ErrInvalidResponse:
		return e.Kind == KindInvalidResponse
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrRateLimited:
		return e.Kind == KindRateLimited
	case ErrAPI:
		return e.IsAPIError()
	}
	return false
}

// IsAPIError reports whether the error came from a completed HTTP response
func (e *Error) IsAPIError() bool {
	switch e.Kind {
	case KindNotFound, KindRateLimited, KindClientError, KindServerError, KindUnexpectedStatus:
		return true
	}
	return false
}

// HasStatus reports whether a status code is attached
func (e *Error) HasStatus() bool {
	return e.StatusCode != 0
}

// AsError attempts to unwrap an error into an *Error.
func AsError(err error) (*Error, bool) {
	var fmErr *Error
	if errors.As(err, &fmErr) {
		return fmErr, true
	}
	return nil, false
}

// IsNotFound checks if the error indicates a not found response
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRateLimited checks if the error indicates a 429 response
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsTimeout checks if the error indicates the request timed out
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

func newNetworkError(err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: fmt.Sprintf("network error: %v", err),
		Err:     err,
	}
}

func newTimeoutError(timeout time.Duration, err error) *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: fmt.Sprintf("request timed out after %s: %v", timeout, err),
		Err:     err,
	}
}

func newInvalidResponseError(err error) *Error {
	return &Error{
		Kind:    KindInvalidResponse,
		Message: fmt.Sprintf("failed to parse response: %v", err),
		Err:     err,
	}
}
