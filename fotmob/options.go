package fotmob

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the current API root
	DefaultBaseURL = "https://www.fotmob.com/api/data"
	// LegacyBaseURL is the API root used by older deployments
	LegacyBaseURL = "http://www.fotmob.com/api"
	// DefaultTimeout bounds connect and read of every request
	DefaultTimeout = 10 * time.Second
	// MaxRedirects is the number of redirect hops followed per request
	MaxRedirects = 3

	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultReferer        = "https://www.fotmob.com/"
	defaultAcceptLanguage = "en-US,en;q=0.9"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	transport http.RoundTripper
	logger    zerolog.Logger
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		userAgent: defaultUserAgent,
		logger:    zerolog.Nop(),
	}
}

// WithTimeout sets the request timeout. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithBaseURL points the client at another API root, e.g. LegacyBaseURL or a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) {
		o.transport = rt
	}
}

// WithLogger enables debug logging of requests. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}
