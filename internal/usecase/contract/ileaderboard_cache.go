package usecasecontract

import "context"

// LeaderboardEntry is one ranked row of the crew leaderboard.
type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Level  int    `json:"level"`
}

// ILeaderboardCache caches the computed leaderboard between polls. The cache
// is an optimization only; a miss or error falls back to computing from the
// entity store.
type ILeaderboardCache interface {
	GetLeaderboard(ctx context.Context) ([]LeaderboardEntry, bool, error)
	SetLeaderboard(ctx context.Context, entries []LeaderboardEntry) error
	InvalidateLeaderboard(ctx context.Context) error
}
