package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/config"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix   = "trade-saga:"
	defaultPositionTTL = 30 * time.Second
)

// redisClient is the subset of redis.Cmdable used by the cache
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// PositionCache stores aggregated positions per user in Redis
type PositionCache struct {
	rdb    redisClient
	prefix string
	ttl    time.Duration
	logger coreport.Logger
}

// NewRedisClient parses the configured URL and verifies the connection
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "redis ping")
	}
	return rdb, nil
}

// NewPositionCache wraps a Redis client
func NewPositionCache(rdb redisClient, cfg config.RedisConfig, logger coreport.Logger) *PositionCache {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	ttl := cfg.PositionTTL
	if ttl <= 0 {
		ttl = defaultPositionTTL
	}
	return &PositionCache{rdb: rdb, prefix: prefix, ttl: ttl, logger: logger}
}

// Get returns cached positions. A miss or an undecodable entry is reported as ok=false.
func (c *PositionCache) Get(ctx context.Context, userID string) ([]*entity.Position, bool, error) {
	data, err := c.rdb.Get(ctx, c.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get positions")
	}

	var positions []*entity.Position
	if err := json.Unmarshal(data, &positions); err != nil {
		c.logger.Warn("Discarding undecodable cached positions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, false, nil
	}
	return positions, true, nil
}

// Set stores positions for ttl
func (c *PositionCache) Set(ctx context.Context, userID string, positions []*entity.Position) error {
	if positions == nil {
		positions = []*entity.Position{}
	}
	data, err := json.Marshal(positions)
	if err != nil {
		return errors.Wrap(err, "marshal positions")
	}
	if err := c.rdb.Set(ctx, c.key(userID), data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set positions")
	}
	return nil
}

// Invalidate drops the cached positions of a user
func (c *PositionCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.rdb.Del(ctx, c.key(userID)).Err(); err != nil {
		return errors.Wrap(err, "redis del positions")
	}
	return nil
}

func (c *PositionCache) key(userID string) string {
	return c.prefix + "positions:" + userID
}
