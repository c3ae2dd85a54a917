// Package sleeper provides a client for the public Sleeper API: the NFL
// player registry and the pick list of a live draft. Both endpoints are
// unauthenticated.
package sleeper

import (
	"context"

	"github.com/draftkit/draftboard/internal/transport"
	"github.com/draftkit/draftboard/pkg/constants"
	"github.com/draftkit/draftboard/pkg/errors"
	"github.com/draftkit/draftboard/pkg/logging"
	"github.com/draftkit/draftboard/pkg/players"
)

// feedName identifies this feed in errors and logs.
const feedName = "sleeper"

// pick is one entry from the draft pick list. Sleeper returns more fields;
// only the player identifier matters here.
type pick struct {
	PlayerID string `json:"player_id"`
}

// Client fetches registry and draft data from the Sleeper API.
type Client struct {
	baseURL   string
	transport *transport.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTransport overrides the transport client.
func WithTransport(t *transport.Client) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// NewClient creates a Sleeper API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   constants.SleeperBaseURL,
		transport: transport.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Players retrieves the full NFL player registry, keyed by Sleeper player id.
func (c *Client) Players(ctx context.Context) (players.Registry, error) {
	url := c.baseURL + "/players/nfl"

	resp, err := c.transport.Get(ctx, url)
	if err != nil {
		return nil, &errors.APIError{Feed: feedName, Endpoint: url, Message: "request failed", Err: err}
	}

	var registry players.Registry
	if err := transport.DecodeResponse(resp, feedName, &registry); err != nil {
		return nil, err
	}

	logging.Info().Int("players", len(registry)).Msg("Fetched Sleeper player registry")
	return registry, nil
}

// DraftPicks retrieves the current pick list for a draft and reduces it to
// the set of drafted player identifiers. The returned set fully replaces any
// previous one; merging is the caller's responsibility to avoid.
func (c *Client) DraftPicks(ctx context.Context, draftID string) (players.PickSet, error) {
	if draftID == "" {
		return nil, &errors.ValidationError{Field: "draftID", Message: "cannot be empty"}
	}
	url := c.baseURL + "/draft/" + draftID + "/picks"

	resp, err := c.transport.Get(ctx, url)
	if err != nil {
		return nil, &errors.APIError{Feed: feedName, Endpoint: url, Message: "request failed", Err: err}
	}

	var picks []pick
	if err := transport.DecodeResponse(resp, feedName, &picks); err != nil {
		return nil, err
	}

	set := players.NewPickSet()
	for _, p := range picks {
		if p.PlayerID != "" {
			set.Add(p.PlayerID)
		}
	}

	logging.Info().Str("draft_id", draftID).Int("picks", set.Len()).Msg("Fetched draft picks")
	return set, nil
}
