package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

const leaderboardKey = "crewboard:leaderboard"

// LeaderboardCacheStore caches the ranked leaderboard in Redis for a short
// TTL so every dashboard view does not re-read the whole user collection.
type LeaderboardCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLeaderboardCacheStore(rdb *redis.Client) *LeaderboardCacheStore {
	return &LeaderboardCacheStore{
		rdb: rdb,
		ttl: 30 * time.Second,
	}
}

// Ensure LeaderboardCacheStore implements the cache contract
var _ usecasecontract.ILeaderboardCache = (*LeaderboardCacheStore)(nil)

func (c *LeaderboardCacheStore) GetLeaderboard(ctx context.Context) ([]usecasecontract.LeaderboardEntry, bool, error) {
	b, err := c.rdb.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var entries []usecasecontract.LeaderboardEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, false, nil
	}
	return entries, true, nil
}

func (c *LeaderboardCacheStore) SetLeaderboard(ctx context.Context, entries []usecasecontract.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, leaderboardKey, data, c.ttl).Err()
}

func (c *LeaderboardCacheStore) InvalidateLeaderboard(ctx context.Context) error {
	return c.rdb.Del(ctx, leaderboardKey).Err()
}
