package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/comex/backend/internal/application/report"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const summaryKey = "report:summary"

// RedisSummaryCache implements the report SummaryCache using Redis.
// This is suitable for deployments where multiple instances share the
// cached dashboard summary.
type RedisSummaryCache struct {
	client *redis.Client
	logger *zap.Logger
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisSummaryCache creates a Redis-backed summary cache
func NewRedisSummaryCache(cfg RedisConfig, logger *zap.Logger) (*RedisSummaryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSummaryCache{client: client, logger: logger}, nil
}

// NewRedisSummaryCacheWithClient creates a cache with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisSummaryCacheWithClient(client *redis.Client, logger *zap.Logger) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, logger: logger}
}

// Get returns the cached summary, if present. Cache errors count as a
// miss so a Redis outage never fails a report request.
func (c *RedisSummaryCache) Get(ctx context.Context) (*report.Summary, bool) {
	data, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("summary cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var summary report.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		c.logger.Warn("summary cache entry corrupt, dropping", zap.Error(err))
		c.client.Del(ctx, summaryKey)
		return nil, false
	}
	return &summary, true
}

// Set stores the summary with the given TTL
func (c *RedisSummaryCache) Set(ctx context.Context, summary *report.Summary, ttl time.Duration) {
	data, err := json.Marshal(summary)
	if err != nil {
		c.logger.Warn("summary cache marshal failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, summaryKey, data, ttl).Err(); err != nil {
		c.logger.Warn("summary cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached summary
func (c *RedisSummaryCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, summaryKey).Err(); err != nil {
		c.logger.Warn("summary cache invalidation failed", zap.Error(err))
	}
}

// Close closes the Redis client
func (c *RedisSummaryCache) Close() error {
	return c.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (c *RedisSummaryCache) GetClient() *redis.Client {
	return c.client
}

// Ensure RedisSummaryCache implements SummaryCache
var _ report.SummaryCache = (*RedisSummaryCache)(nil)
