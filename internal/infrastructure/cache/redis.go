package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL builds a Redis client from a redis:// URL and pings it.
func NewRedisFromURL(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("invalid REDIS_URL, cache disabled: %v", err)
		return nil
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable, cache disabled: %v", err)
		return nil
	}
	return rdb
}

// Close closes the client if present.
func Close(rdb *redis.Client) {
	if rdb != nil {
		_ = rdb.Close()
	}
}
