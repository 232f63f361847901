// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"stock_ticker/internal/feature/quotes/adapters/fmp"
	"stock_ticker/internal/feature/quotes/adapters/twelvedata"
	"stock_ticker/internal/feature/quotes/usecase"
	"stock_ticker/internal/platform/cache"
	"stock_ticker/internal/platform/config"
	infrahttp "stock_ticker/internal/platform/http"
	infraredis "stock_ticker/internal/platform/redis"
)

// NewProviders creates every quote provider client with its own HTTP client.
func NewProviders(cfg config.Config) []usecase.QuoteProvider {
	twelveCfg := twelvedata.Config{BaseURL: cfg.Twelve.BaseURL, Timeout: cfg.Twelve.Timeout}
	fmpCfg := fmp.Config{BaseURL: cfg.FMP.BaseURL, Timeout: cfg.FMP.Timeout}

	// Client.Timeout is a backstop; each client applies its own per-request deadline.
	return []usecase.QuoteProvider{
		twelvedata.NewTwelveDataQuotes(twelveCfg, infrahttp.NewHTTPClient(2*twelveCfg.Timeout)),
		fmp.NewFMPQuotes(fmpCfg, infrahttp.NewHTTPClient(2*fmpCfg.Timeout)),
	}
}

// QuoteCache bundles the selected cache with the resources behind it.
type QuoteCache struct {
	usecase.QuoteCache
	// Redis is nil when the process-local cache is in use.
	Redis *redisv9.Client
	// Memory is nil when Redis is in use.
	Memory *cache.MemoryQuoteCache
}

// Close releases the Redis connection, if any.
func (c QuoteCache) Close() {
	if c.Redis == nil {
		return
	}
	if err := c.Redis.Close(); err != nil {
		slog.Error("failed to close Redis client", "error", err)
	}
}

// NewQuoteCache returns a Redis-backed cache when Redis is configured and
// reachable. Otherwise, it falls back to a process-local cache.
func NewQuoteCache(ctx context.Context, cfg config.Config) QuoteCache {
	if cfg.Redis.Host != "" {
		rdb, err := infraredis.NewRedisClient(ctx, cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err == nil {
			return QuoteCache{QuoteCache: cache.NewRedisQuoteCache(rdb, cfg.Cache.Namespace), Redis: rdb}
		}
		slog.Warn("Redis unavailable, using in-memory quote cache", "error", err)
	}
	mem := cache.NewMemoryQuoteCache()
	return QuoteCache{QuoteCache: mem, Memory: mem}
}
