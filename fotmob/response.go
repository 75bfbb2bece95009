package fotmob

import (
	"fmt"
	"net/http"
	"strconv"
)

// classify maps a completed response to nil (200) or a taxonomy error.
// Every status code lands in exactly one bucket.
func classify(statusCode int, body []byte) error {
	switch {
	case statusCode == http.StatusOK:
		return nil
	case statusCode == http.StatusNotFound:
		return &Error{
			Kind:       KindNotFound,
			Message:    "resource not found",
			StatusCode: statusCode,
			Body:       string(body),
		}
	case statusCode == http.StatusTooManyRequests:
		return &Error{
			Kind:       KindRateLimited,
			Message:    "rate limit exceeded, please try again later",
			StatusCode: statusCode,
			Body:       string(body),
		}
	case statusCode >= 400 && statusCode <= 499:
		return &Error{
			Kind:       KindClientError,
			Message:    "client error: " + statusLine(statusCode),
			StatusCode: statusCode,
			Body:       string(body),
		}
	case statusCode >= 500 && statusCode <= 599:
		return &Error{
			Kind:       KindServerError,
			Message:    "server error: " + statusLine(statusCode),
			StatusCode: statusCode,
			Body:       string(body),
		}
	default:
		return &Error{
			Kind:       KindUnexpectedStatus,
			Message:    "unexpected response: " + statusLine(statusCode),
			StatusCode: statusCode,
			Body:       string(body),
		}
	}
}

func statusLine(code int) string {
	if text := http.StatusText(code); text != "" {
		return fmt.Sprintf("%d %s", code, text)
	}
	return strconv.Itoa(code)
}
