// Package cache provides QuoteCache implementations backed by Redis or process memory.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_ticker/internal/feature/quotes/domain/entity"
	"stock_ticker/internal/feature/quotes/usecase"
)

// DefaultNamespace prefixes every quote key in Redis.
const DefaultNamespace = "quotes"

// RedisQuoteCache stores resolved quotes in Redis as JSON with a per-entry TTL.
// A nil client disables the cache: every Get misses and Set is a no-op.
type RedisQuoteCache struct {
	rdb       *redis.Client
	namespace string
}

var _ usecase.QuoteCache = (*RedisQuoteCache)(nil)

// NewRedisQuoteCache creates a RedisQuoteCache. If namespace is empty, it uses "quotes".
func NewRedisQuoteCache(rdb *redis.Client, namespace string) *RedisQuoteCache {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &RedisQuoteCache{rdb: rdb, namespace: namespace}
}

// Get returns the cached quote for key. Redis applies the expiry, so an
// expired entry is simply absent.
func (c *RedisQuoteCache) Get(ctx context.Context, key string) (entity.Quote, bool) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return entity.Quote{}, false
	}

	k := c.key(key)
	b, err := c.rdb.Get(ctx, k).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("quote cache read failed", "key", k, "error", err)
		}
		return entity.Quote{}, false
	}

	var q entity.Quote
	if err := json.Unmarshal(b, &q); err != nil || !q.Valid() {
		// 壊れたキャッシュエントリは削除する
		_ = c.rdb.Del(ctx, k).Err()
		return entity.Quote{}, false
	}
	return q, true
}

// Set stores q under key for ttl. Quotes without a price are never stored.
func (c *RedisQuoteCache) Set(ctx context.Context, key string, q entity.Quote, ttl time.Duration) {
	if c.rdb == nil || !q.Valid() {
		return
	}
	if ttl <= 0 {
		ttl = usecase.DefaultTTL
	}

	b, err := json.Marshal(q)
	if err != nil {
		slog.Warn("quote cache encode failed", "key", key, "error", err)
		return
	}
	// Best effort: a failed write only costs an extra upstream call later.
	if err := c.rdb.Set(ctx, c.key(key), b, ttl).Err(); err != nil {
		slog.Warn("quote cache write failed", "key", key, "error", err)
	}
}

func (c *RedisQuoteCache) key(k string) string {
	return c.namespace + ":" + k
}
