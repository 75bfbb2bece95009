package fotmob

import (
	"context"
)

// API defines the interface for FotMob operations
type API interface {
	// GetLeague retrieves a league by ID
	GetLeague(ctx context.Context, leagueID string) (Value, error)

	// GetMatches retrieves all matches on a YYYYMMDD date
	GetMatches(ctx context.Context, date string) (Value, error)

	// GetMatchDetails retrieves a single match by ID
	GetMatchDetails(ctx context.Context, matchID string) (Value, error)

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, playerID string) (Value, error)

	// GetTeam retrieves a team by ID
	GetTeam(ctx context.Context, teamID string) (Value, error)
}

var _ API = (*Client)(nil)
