package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fieldlinehq/fieldline/pkg/constants"
	"github.com/fieldlinehq/fieldline/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with authentication.
type Client struct {
	http   *http.Client
	auth   Authenticator
	apiKey string
}

// New creates a new transport client with the specified authenticator
// and API key. The key is applied to every outgoing request.
func New(auth Authenticator, apiKey string) *Client {
	return &Client{
		http:   &http.Client{Timeout: DefaultHTTPTimeout},
		auth:   auth,
		apiKey: apiKey,
	}
}

// SetTimeout overrides the HTTP timeout for subsequent requests.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.http.Timeout = timeout
}

// Do performs an HTTP request with authentication applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.auth != nil && c.apiKey != "" {
		c.auth.Apply(req, c.apiKey)
	}

	// Set common headers
	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapIO("create request", url, err)
	}
	return c.Do(req)
}

// Post performs a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, url string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.WrapParse("json", "request body", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WrapIO("create request", url, err)
	}
	return c.Do(req)
}
