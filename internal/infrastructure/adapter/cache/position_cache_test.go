package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type setCall struct {
	key string
	ttl time.Duration
}

// fakeRedis keeps values in a map and answers with prebuilt go-redis results
type fakeRedis struct {
	values map[string]string
	sets   []setCall
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string]string)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = string(value.([]byte))
	f.sets = append(f.sets, setCall{key: key, ttl: expiration})
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestPositionCache(t *testing.T) {
	cfg := config.RedisConfig{KeyPrefix: "test:", PositionTTL: time.Minute}
	user := "0x1111111111111111111111111111111111111111"
	createdAt := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	positions := []*entity.Position{{
		UserID:          user,
		MarketID:        "0xmarket",
		Side:            entity.SideYes,
		TotalSize:       decimal.NewFromInt(20),
		AvgPrice:        decimal.RequireFromString("0.475"),
		Notional:        decimal.RequireFromString("9.5"),
		OrderCount:      3,
		LatestOrderID:   "order-3",
		LatestCreatedAt: createdAt,
	}}

	t.Run("Round trips with prefix and ttl", func(t *testing.T) {
		// Arrange
		rdb := newFakeRedis()
		cache := NewPositionCache(rdb, cfg, logger.NewNoopLogger())

		// Act
		require.NoError(t, cache.Set(context.Background(), user, positions))
		got, ok, err := cache.Get(context.Background(), user)

		// Assert
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, "test:positions:"+user, rdb.sets[0].key)
		assert.Equal(t, time.Minute, rdb.sets[0].ttl)
		assert.True(t, got[0].AvgPrice.Equal(decimal.RequireFromString("0.475")))
		assert.True(t, got[0].LatestCreatedAt.Equal(createdAt))
		assert.Equal(t, 3, got[0].OrderCount)
	})

	t.Run("Miss", func(t *testing.T) {
		cache := NewPositionCache(newFakeRedis(), cfg, logger.NewNoopLogger())

		got, ok, err := cache.Get(context.Background(), user)

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("Invalidate drops the entry", func(t *testing.T) {
		// Arrange
		rdb := newFakeRedis()
		cache := NewPositionCache(rdb, cfg, logger.NewNoopLogger())
		require.NoError(t, cache.Set(context.Background(), user, positions))

		// Act
		err := cache.Invalidate(context.Background(), user)

		// Assert
		require.NoError(t, err)
		_, ok, _ := cache.Get(context.Background(), user)
		assert.False(t, ok)
	})

	t.Run("Corrupt entry is a miss", func(t *testing.T) {
		rdb := newFakeRedis()
		rdb.values["test:positions:"+user] = "{not json"
		cache := NewPositionCache(rdb, cfg, logger.NewNoopLogger())

		_, ok, err := cache.Get(context.Background(), user)

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Connection errors surface", func(t *testing.T) {
		rdb := newFakeRedis()
		rdb.err = errors.New("connection refused")
		cache := NewPositionCache(rdb, cfg, logger.NewNoopLogger())

		_, _, getErr := cache.Get(context.Background(), user)
		setErr := cache.Set(context.Background(), user, positions)
		delErr := cache.Invalidate(context.Background(), user)

		assert.ErrorContains(t, getErr, "connection refused")
		assert.ErrorContains(t, setErr, "connection refused")
		assert.ErrorContains(t, delErr, "connection refused")
	})

	t.Run("Defaults", func(t *testing.T) {
		cache := NewPositionCache(newFakeRedis(), config.RedisConfig{}, logger.NewNoopLogger())

		assert.Equal(t, defaultKeyPrefix+"positions:"+user, cache.key(user))
		assert.Equal(t, defaultPositionTTL, cache.ttl)
	})
}
