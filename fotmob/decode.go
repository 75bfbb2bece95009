package fotmob

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

var errEmptyBody = errors.New("empty response body")

// decode parses a JSON body into a Value. Every failure is an
// InvalidResponse error; the parser's error is kept as the cause only.
func decode(body []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			err = errEmptyBody
		}
		return Value{}, newInvalidResponseError(err)
	}

	// Reject trailing content such as `{} {}` or `{}garbage`
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return Value{}, newInvalidResponseError(err)
	}

	v, err := FromNative(raw)
	if err != nil {
		return Value{}, newInvalidResponseError(err)
	}
	return v, nil
}
