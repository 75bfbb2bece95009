package fotmob

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	t.Run("with status", func(t *testing.T) {
		err := &Error{Kind: KindNotFound, Message: "resource not found", StatusCode: 404}
		assert.Equal(t, "fotmob: resource not found (status 404)", err.Error())
	})

	t.Run("without status", func(t *testing.T) {
		err := newTimeoutError(10*time.Second, errors.New("i/o timeout"))
		assert.Equal(t, "fotmob: request timed out after 10s: i/o timeout", err.Error())
	})
}

func TestErrorIs(t *testing.T) {
	sentinels := []error{ErrNetwork, ErrTimeout, ErrAPI, ErrNotFound, ErrRateLimited, ErrInvalidResponse}

	tests := []struct {
		kind    Kind
		matches []error
	}{
		{KindNetwork, []error{ErrNetwork}},
		{KindTimeout, []error{ErrTimeout}},
		{KindNotFound, []error{ErrAPI, ErrNotFound}},
		{KindRateLimited, []error{ErrAPI, ErrRateLimited}},
		{KindClientError, []error{ErrAPI}},
		{KindServerError, []error{ErrAPI}},
		{KindUnexpectedStatus, []error{ErrAPI}},
		{KindInvalidResponse, []error{ErrInvalidResponse}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &Error{Kind: tt.kind, Message: "x"})
			for _, sentinel := range sentinels {
				want := false
				for _, m := range tt.matches {
					if m == sentinel {
						want = true
					}
				}
				assert.Equal(t, want, errors.Is(err, sentinel), "sentinel %v", sentinel)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := newNetworkError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "fotmob: network error: connection refused", err.Error())
}

func TestHelpers(t *testing.T) {
	notFound := fmt.Errorf("get team: %w", &Error{Kind: KindNotFound, StatusCode: 404})
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsRateLimited(notFound))
	assert.False(t, IsTimeout(notFound))

	fmErr, ok := AsError(notFound)
	require.True(t, ok)
	assert.True(t, fmErr.IsAPIError())
	assert.True(t, fmErr.HasStatus())

	_, ok = AsError(errors.New("plain"))
	assert.False(t, ok)

	assert.True(t, IsRateLimited(&Error{Kind: KindRateLimited}))
	assert.True(t, IsTimeout(&Error{Kind: KindTimeout}))
	assert.False(t, (&Error{Kind: KindTimeout}).IsAPIError())
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindNetwork, "network"},
		{KindTimeout, "timeout"},
		{KindNotFound, "not_found"},
		{KindRateLimited, "rate_limited"},
		{KindClientError, "client_error"},
		{KindServerError, "server_error"},
		{KindUnexpectedStatus, "unexpected_status"},
		{KindInvalidResponse, "invalid_response"},
		{Kind(0), "unknown"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}
