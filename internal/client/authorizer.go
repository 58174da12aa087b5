// ABOUTME: Request authorizer transport that attaches the stored bearer token
// ABOUTME: Clones requests before adding headers so callers' requests are never mutated

package client

import (
	"net/http"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/store"
)

// Authorizer is an http.RoundTripper that reads the session token from the
// store before every request
type Authorizer struct {
	base  http.RoundTripper
	store store.Store
}

var _ http.RoundTripper = (*Authorizer)(nil)

// NewAuthorizer wraps base. A nil base uses http.DefaultTransport.
func NewAuthorizer(base http.RoundTripper, s store.Store) *Authorizer {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Authorizer{base: base, store: s}
}

// Authorize returns req unchanged when no token is stored, otherwise a
// clone carrying the bearer token and JSON content type
func (a *Authorizer) Authorize(req *http.Request) *http.Request {
	token, ok := a.store.Get(store.KeyToken)
	if !ok || token == "" {
		return req
	}

	authed := req.Clone(req.Context())
	authed.Header.Set("Authorization", "Bearer "+token)
	authed.Header.Set("Content-Type", "application/json")
	return authed
}

// RoundTrip implements http.RoundTripper
func (a *Authorizer) RoundTrip(req *http.Request) (*http.Response, error) {
	return a.base.RoundTrip(a.Authorize(req))
}

// NewAuthorized creates a Client whose requests carry the stored token and
// are logged with a request ID
func NewAuthorized(baseURL string, s store.Store, opts ...Option) *Client {
	transport := NewAuthorizer(NewRequestLogger(nil), s)
	return New(baseURL, append([]Option{WithTransport(transport)}, opts...)...)
}
