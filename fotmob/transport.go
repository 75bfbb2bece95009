package fotmob

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// transport performs a single GET per call. Nothing here is mutated after
// construction, so one transport serves concurrent calls.
type transport struct {
	client  *resty.Client
	timeout time.Duration
	logger  zerolog.Logger
}

func newTransport(o clientOptions) *transport {
	headers := map[string]string{
		"User-Agent":      o.userAgent,
		"Accept":          "application/json",
		"Accept-Language": defaultAcceptLanguage,
		"Referer":         defaultReferer,
	}

	client := resty.New().
		SetTimeout(o.timeout).
		SetHeaders(headers).
		SetCookieJar(nil).
		SetLogger(restyLogger{logger: o.logger}).
		SetRedirectPolicy(redirectPolicy(headers))

	if o.transport != nil {
		client.SetTransport(o.transport)
	}

	return &transport{
		client:  client,
		timeout: o.timeout,
		logger:  o.logger,
	}
}

// redirectPolicy follows up to MaxRedirects hops, re-applying the fixed
// headers on each one. Past the cap the last redirect response is returned
// unchanged and the classifier reports it as an unexpected status.
func redirectPolicy(headers map[string]string) resty.RedirectPolicy {
	return resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		if len(via) > MaxRedirects {
			return http.ErrUseLastResponse
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return nil
	})
}

// get returns the status code and body of a completed exchange, or a
// Timeout/Network error.
func (t *transport) get(ctx context.Context, target string) (int, []byte, error) {
	requestID := uuid.NewString()
	start := time.Now()

	t.logger.Debug().
		Str("request_id", requestID).
		Str("url", target).
		Msg("Making FotMob API request")

	resp, err := t.client.R().SetContext(ctx).Get(target)
	if err != nil {
		wrapped := t.wrapError(err)
		t.logger.Debug().
			Err(wrapped).
			Str("request_id", requestID).
			Dur("duration", time.Since(start)).
			Msg("FotMob API request failed")
		return 0, nil, wrapped
	}

	t.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Dur("duration", time.Since(start)).
		Msg("Received FotMob API response")

	return resp.StatusCode(), resp.Body(), nil
}

func (t *transport) wrapError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return newTimeoutError(t.timeout, err)
	}
	return newNetworkError(err)
}

// restyLogger routes resty's internal messages through zerolog
type restyLogger struct {
	logger zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}
