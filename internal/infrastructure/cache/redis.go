// Package cache provides an optional Redis-backed plan cache.
// Scraped prices go stale quickly, so cached plans carry a TTL and a
// miss is always safe: every failure path degrades to recomputing.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trip-finder/trip-deal-optimizer/internal/domain"
	"github.com/trip-finder/trip-deal-optimizer/internal/infrastructure/logger"
	"github.com/trip-finder/trip-deal-optimizer/internal/usecase"
)

// Config holds the Redis connection settings.
type Config struct {
	// Addr is the Redis server address (host:port)
	Addr string

	// Password is the Redis password (empty for no auth)
	Password string

	// DB is the Redis database number
	DB int
}

// RedisPlanCache stores computed trip plans in Redis as JSON values.
type RedisPlanCache struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisPlanCache creates a plan cache backed by the given Redis
// server. A nil log disables cache logging.
func NewRedisPlanCache(cfg Config, log *logger.Logger) *RedisPlanCache {
	if log == nil {
		log = logger.Nop()
	}
	return &RedisPlanCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		log: log,
	}
}

// Get returns the cached plan for the key. Connection problems and
// corrupt payloads are reported as misses.
func (c *RedisPlanCache) Get(ctx context.Context, key string) (*domain.TripPlan, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("Plan cache read failed")
		}
		return nil, false
	}

	var plan domain.TripPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Plan cache payload corrupt")
		return nil, false
	}
	return &plan, true
}

// Set stores the plan under the key with the given TTL. Failures are
// logged and swallowed so a broken cache never fails a request.
func (c *RedisPlanCache) Set(ctx context.Context, key string, plan *domain.TripPlan, ttl time.Duration) {
	payload, err := json.Marshal(plan)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Plan cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Plan cache write failed")
	}
}

// Ping verifies the Redis connection. Called at startup so a
// misconfigured cache surfaces in the logs before the first request.
func (c *RedisPlanCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying Redis connection pool.
func (c *RedisPlanCache) Close() error {
	return c.client.Close()
}

// Ensure RedisPlanCache implements usecase.PlanCache at compile time.
var _ usecase.PlanCache = (*RedisPlanCache)(nil)
