// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/redis/go-redis/v9"
)

// generationTTL outlives any entry TTL so a bump is never forgotten while
// entries of the previous generation are still alive.
const generationTTL = 7 * 24 * time.Hour

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisClient builds a go-redis client from the cache config.
func NewRedisClient(cfg config.Cache) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// NewInsightsCache returns a Redis backed cache, or the no-op cache when no
// Redis address is configured. A configured but unreachable Redis is an error.
func NewInsightsCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (InsightsCache, error) {
	if cfg.RedisAddress == "" {
		log.Info().Str("func", "cache.NewInsightsCache").Msg("redis address not set, insights cache disabled")
		return NewNopCache(), nil
	}

	client := NewRedisClient(cfg)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error pinging redis: %w", err)
	}

	return newRedisCache(client, cfg.InsightsTTL, log), nil
}

func newRedisCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *redisCache {
	return &redisCache{client: client, ttl: ttl, logger: log}
}

func (c *redisCache) generation(ctx context.Context, userID int64) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *redisCache) Get(ctx context.Context, userID int64, rangeKey string) (models.MoodInsights, error) {
	gen, err := c.generation(ctx, userID)
	if err != nil {
		return models.MoodInsights{}, fmt.Errorf("error reading insights generation: %w", err)
	}

	raw, err := c.client.Get(ctx, entryKey(userID, gen, rangeKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.MoodInsights{}, ErrCacheMiss
	}
	if err != nil {
		return models.MoodInsights{}, fmt.Errorf("error reading cached insights: %w", err)
	}

	var insights models.MoodInsights
	if err := json.Unmarshal(raw, &insights); err != nil {
		c.logger.Warn().Err(err).Str("func", "redisCache.Get").Msg("dropping malformed cached insights")
		return models.MoodInsights{}, ErrCacheMiss
	}

	return insights, nil
}

func (c *redisCache) Set(ctx context.Context, userID int64, rangeKey string, insights models.MoodInsights) error {
	gen, err := c.generation(ctx, userID)
	if err != nil {
		return fmt.Errorf("error reading insights generation: %w", err)
	}

	raw, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("error encoding insights: %w", err)
	}

	if err := c.client.Set(ctx, entryKey(userID, gen, rangeKey), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("error caching insights: %w", err)
	}
	return nil
}

func (c *redisCache) Invalidate(ctx context.Context, userID int64) error {
	key := generationKey(userID)

	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, generationTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error invalidating insights: %w", err)
	}
	return nil
}
