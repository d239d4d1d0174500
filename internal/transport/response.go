package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/fieldlinehq/fieldline/pkg/errors"
)

// apiError is the diagnostic payload the record API returns on failure.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DecodeResponse decodes a JSON response into the target structure. The
// body is consumed and closed either way. Non-2xx statuses become a
// StoreError carrying the API's status, code, and message; callers fill
// in the operation context before returning it.
func DecodeResponse(resp *http.Response, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(resp.StatusCode, body)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response body", err)
	}

	return nil
}

// statusError builds a StoreError from a non-2xx response. The API sends
// {"code","message"} payloads; anything else is carried as raw text.
func statusError(status int, body []byte) error {
	var payload apiError
	if err := json.Unmarshal(body, &payload); err != nil || payload.Message == "" {
		payload.Code = ""
		payload.Message = strings.TrimSpace(string(body))
	}
	if payload.Message == "" {
		payload.Message = http.StatusText(status)
	}

	return &errors.StoreError{
		StatusCode: status,
		Code:       payload.Code,
		Message:    payload.Message,
	}
}
