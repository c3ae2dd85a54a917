// Package transport provides shared HTTP client functionality for the
// external feeds draftboard consumes. The Sleeper API is public and
// unauthenticated, so the client carries only timeout and decoding concerns.
package transport

import (
	"context"
	"net/http"

	"github.com/draftkit/draftboard/pkg/constants"
	"github.com/draftkit/draftboard/pkg/errors"
)

// Client wraps an http.Client with feed-oriented defaults.
type Client struct {
	http *http.Client
}

// New creates a transport client with the default timeout.
func New() *Client {
	return &Client{
		http: &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}
}

// NewWithHTTPClient creates a transport client around an existing
// http.Client. Used by tests to point at an httptest server.
func NewWithHTTPClient(h *http.Client) *Client {
	if h == nil {
		return New()
	}
	return &Client{http: h}
}

// Get performs a GET request against url and returns the response.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapIO("create", "GET "+url, err)
	}
	req.Header.Set("Accept", "application/json")
	return c.http.Do(req)
}
