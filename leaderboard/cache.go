// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ziado0/kvoter-app/models"
)

const cacheKey = "kvoter:leaderboard"

// Cache holds short-lived copies of computed snapshots. It only ever serves
// the derived view; the SQL store stays the source of truth for the ledger
// invariant, so a stale or lost cache entry is harmless.
type Cache interface {
	Get(ctx context.Context) (*models.LeaderboardSnapshot, error)
	Set(ctx context.Context, snap models.LeaderboardSnapshot) error
	Close() error
}

// NopCache misses on every read. Used when no Redis URL is configured.
type NopCache struct{}

func (NopCache) Get(ctx context.Context) (*models.LeaderboardSnapshot, error) {
	return nil, nil
}

func (NopCache) Set(ctx context.Context, snap models.LeaderboardSnapshot) error {
	return nil
}

func (NopCache) Close() error { return nil }

// RedisCache stores the snapshot as JSON with a short TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(ctx context.Context, url string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	c := redis.NewClient(opts)
	if err := c.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: c, ttl: ttl}, nil
}

// Get returns the cached snapshot, or nil on a miss.
func (rc *RedisCache) Get(ctx context.Context) (*models.LeaderboardSnapshot, error) {
	b, err := rc.client.Get(ctx, cacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard cache: %w", err)
	}

	var snap models.LeaderboardSnapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode cached leaderboard: %w", err)
	}

	return &snap, nil
}

func (rc *RedisCache) Set(ctx context.Context, snap models.LeaderboardSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode leaderboard: %w", err)
	}

	if err := rc.client.Set(ctx, cacheKey, b, rc.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write leaderboard cache: %w", err)
	}

	return nil
}

func (rc *RedisCache) Close() error {
	return rc.client.Close()
}
