package transport

import (
	"net/http"
)

// Authenticator applies authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request, apiKey string)
}

// NoAuth implements no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request, _ string) {
	// No authentication applied
}

// BearerAuth implements Bearer token authentication.
type BearerAuth struct{}

// Apply implements the Authenticator interface for BearerAuth.
func (a *BearerAuth) Apply(req *http.Request, apiKey string) {
	req.Header.Set("Authorization", "Bearer "+apiKey)
}

// BasicAuth implements Basic authentication with a pre-encoded credential.
type BasicAuth struct{}

// Apply implements the Authenticator interface for BasicAuth.
func (a *BasicAuth) Apply(req *http.Request, apiKey string) {
	req.Header.Set("Authorization", "Basic "+apiKey)
}

// HeaderAuth implements custom header authentication.
type HeaderAuth struct {
	Header string
}

// Apply implements the Authenticator interface for HeaderAuth.
func (a *HeaderAuth) Apply(req *http.Request, apiKey string) {
	req.Header.Set(a.Header, apiKey)
}

// QueryAuth implements API key as query parameter authentication.
type QueryAuth struct {
	Param string
}

// Apply implements the Authenticator interface for QueryAuth.
func (a *QueryAuth) Apply(req *http.Request, apiKey string) {
	if req.URL == nil {
		return
	}

	// Parse existing query parameters
	query := req.URL.Query()
	query.Set(a.Param, apiKey)
	req.URL.RawQuery = query.Encode()
}

// ForScheme returns the authenticator matching a configured scheme name.
// Unknown schemes fall back to bearer, the record API's default.
func ForScheme(scheme string) Authenticator {
	switch scheme {
	case "none":
		return &NoAuth{}
	case "basic":
		return &BasicAuth{}
	case "header":
		return &HeaderAuth{Header: "X-Api-Key"}
	case "query":
		return &QueryAuth{Param: "api_key"}
	default:
		return &BearerAuth{}
	}
}
