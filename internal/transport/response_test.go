package transport

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/fieldlinehq/fieldline/pkg/errors"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// TestDecodeResponseSuccess tests decoding a 2xx JSON body.
func TestDecodeResponseSuccess(t *testing.T) {
	resp := response(http.StatusOK, `{"records":[{"id":"001"}]}`)

	var out struct {
		Records []struct {
			ID string `json:"id"`
		} `json:"records"`
	}
	if err := DecodeResponse(resp, &out); err != nil {
		t.Fatalf("DecodeResponse failed: %v", err)
	}
	if len(out.Records) != 1 || out.Records[0].ID != "001" {
		t.Errorf("Expected one record with id 001, got %+v", out.Records)
	}
}

// TestDecodeResponseNilTarget tests that a nil target skips decoding.
func TestDecodeResponseNilTarget(t *testing.T) {
	resp := response(http.StatusOK, `{"records":[]}`)

	if err := DecodeResponse(resp, nil); err != nil {
		t.Fatalf("DecodeResponse with nil target failed: %v", err)
	}
}

// TestDecodeResponseAPIError tests mapping of the API's error payload.
func TestDecodeResponseAPIError(t *testing.T) {
	resp := response(http.StatusNotFound, `{"code":"object_not_found","message":"no such record"}`)

	err := DecodeResponse(resp, nil)
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	var storeErr *errors.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("Expected StoreError, got %T", err)
	}
	if storeErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", storeErr.StatusCode)
	}
	if storeErr.Code != "object_not_found" {
		t.Errorf("Expected code 'object_not_found', got '%s'", storeErr.Code)
	}
	if storeErr.Message != "no such record" {
		t.Errorf("Expected message 'no such record', got '%s'", storeErr.Message)
	}
	if !errors.IsNotFound(err) {
		t.Error("Expected 404 to satisfy IsNotFound")
	}
}

// TestDecodeResponseNonJSONError tests that raw error bodies are carried as text.
func TestDecodeResponseNonJSONError(t *testing.T) {
	resp := response(http.StatusBadGateway, "upstream exploded")

	err := DecodeResponse(resp, nil)
	if err == nil {
		t.Fatal("Expected error for 502 response")
	}

	var storeErr *errors.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("Expected StoreError, got %T", err)
	}
	if storeErr.Message != "upstream exploded" {
		t.Errorf("Expected raw body as message, got '%s'", storeErr.Message)
	}
	if !errors.IsStoreUnavailable(err) {
		t.Error("Expected 502 to satisfy IsStoreUnavailable")
	}
}

// TestDecodeResponseEmptyErrorBody tests the status text fallback.
func TestDecodeResponseEmptyErrorBody(t *testing.T) {
	resp := response(http.StatusTooManyRequests, "")

	err := DecodeResponse(resp, nil)
	if err == nil {
		t.Fatal("Expected error for 429 response")
	}

	var storeErr *errors.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("Expected StoreError, got %T", err)
	}
	if storeErr.Message != http.StatusText(http.StatusTooManyRequests) {
		t.Errorf("Expected status text fallback, got '%s'", storeErr.Message)
	}
	if !errors.IsRateLimited(err) {
		t.Error("Expected 429 to satisfy IsRateLimited")
	}
}

// TestDecodeResponseMalformedJSON tests parse error reporting.
func TestDecodeResponseMalformedJSON(t *testing.T) {
	resp := response(http.StatusOK, "{not json")

	var out map[string]any
	err := DecodeResponse(resp, &out)
	if err == nil {
		t.Fatal("Expected parse error for malformed body")
	}

	var parseErr *errors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %T", err)
	}
}
