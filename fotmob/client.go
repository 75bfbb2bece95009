package fotmob

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const (
	pathLeagues      = "/leagues"
	pathMatches      = "/matches"
	pathMatchDetails = "/matchDetails"
	pathPlayerData   = "/playerData"
	pathTeams        = "/teams"
)

// Client represents a FotMob API client
type Client struct {
	baseURL   string
	timeout   time.Duration
	transport *transport
	logger    zerolog.Logger
}

// NewClient creates a new FotMob client. The only failure is an invalid base URL.
func NewClient(opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	baseURL, err := normalizeBaseURL(o.baseURL)
	if err != nil {
		return nil, err
	}
	o.baseURL = baseURL

	return &Client{
		baseURL:   baseURL,
		timeout:   o.timeout,
		transport: newTransport(o),
		logger:    o.logger,
	}, nil
}

// Timeout returns the configured request timeout
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// BaseURL returns the API root requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetLeague retrieves league/competition data
func (c *Client) GetLeague(ctx context.Context, leagueID string) (Value, error) {
	return c.get(ctx, pathLeagues, "id", leagueID)
}

// GetMatches retrieves the matches played on date (YYYYMMDD, e.g. "20221030")
func (c *Client) GetMatches(ctx context.Context, date string) (Value, error) {
	return c.get(ctx, pathMatches, "date", date)
}

// GetMatchDetails retrieves detailed information about a single match
func (c *Client) GetMatchDetails(ctx context.Context, matchID string) (Value, error) {
	return c.get(ctx, pathMatchDetails, "matchId", matchID)
}

// GetPlayer retrieves player data and statistics
func (c *Client) GetPlayer(ctx context.Context, playerID string) (Value, error) {
	return c.get(ctx, pathPlayerData, "id", playerID)
}

// GetTeam retrieves team data and statistics
func (c *Client) GetTeam(ctx context.Context, teamID string) (Value, error) {
	return c.get(ctx, pathTeams, "id", teamID)
}

// get builds the URL, performs the request, classifies the status and decodes the body
func (c *Client) get(ctx context.Context, path, param, value string) (Value, error) {
	target, err := buildURL(c.baseURL, path, map[string]string{param: value})
	if err != nil {
		return Value{}, err
	}

	status, body, err := c.transport.get(ctx, target)
	if err != nil {
		return Value{}, err
	}

	if err := classify(status, body); err != nil {
		c.logger.Debug().
			Err(err).
			Str("path", path).
			Msg("FotMob API returned an error status")
		return Value{}, err
	}

	return decode(body)
}
