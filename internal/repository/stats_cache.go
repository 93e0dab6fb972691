package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrCacheMiss is returned when the requested key is not cached.
var ErrCacheMiss = errors.New("stats cache: key not found")

// StatsCache is a short-TTL Redis cache in front of the heavier analytics
// aggregations. The service degrades to direct queries when the cache is
// unavailable, so every method failure here is non-fatal to callers.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewStatsCache(addr, password string, db int, ttl time.Duration, logger zerolog.Logger) (*StatsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &StatsCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (c *StatsCache) Get(ctx context.Context, key string, dst interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("failed to get %q: %w", key, err)
	}

	return json.Unmarshal(data, dst)
}

func (c *StatsCache) Set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("Failed to marshal cache value")
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Failed to set cache value")
	}
}

func (c *StatsCache) Close() error {
	return c.client.Close()
}
