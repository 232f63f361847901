package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"stock_ticker/internal/feature/quotes/domain"
	"stock_ticker/internal/feature/quotes/domain/entity"
	"stock_ticker/internal/feature/quotes/domain/symbol"
)

// DefaultTTL is how long a resolved quote stays cached.
const DefaultTTL = 60 * time.Minute

// QuoteCache stores resolved quotes with an expiry.
// Absent and expired entries are indistinguishable.
type QuoteCache interface {
	Get(ctx context.Context, key string) (entity.Quote, bool)
	Set(ctx context.Context, key string, q entity.Quote, ttl time.Duration)
}

// Resolver looks up quotes in the cache and falls back to the selected provider.
type Resolver struct {
	registry *Registry
	cache    QuoteCache
	ttl      time.Duration
}

// NewResolver creates a Resolver. If ttl is 0 it defaults to DefaultTTL.
func NewResolver(registry *Registry, cache QuoteCache, ttl time.Duration) *Resolver {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Resolver{registry: registry, cache: cache, ttl: ttl}
}

// Resolve returns a valid quote for sym from provider.
//
// With useCache the cache is consulted first. A fetched quote is always
// written back, so useCache=false refreshes the entry. Failures are never
// cached: the next call goes upstream again.
func (r *Resolver) Resolve(ctx context.Context, sym string, provider entity.Provider, apiKey string, useCache bool) (entity.Quote, error) {
	p, err := r.registry.Lookup(provider)
	if err != nil {
		return entity.Quote{}, err
	}
	sym = strings.TrimSpace(sym)
	if sym == "" {
		return entity.Quote{}, domain.ErrMissingSymbol
	}
	if apiKey == "" {
		return entity.Quote{}, domain.ErrMissingAPIKey
	}

	// The key uses the provider's own normalization so every spelling of a
	// symbol lands on the same entry.
	key := symbol.CacheKey(provider, p.CacheSymbol(sym))

	if useCache {
		if q, ok := r.cache.Get(ctx, key); ok && q.Valid() {
			slog.Debug("quote cache hit", "symbol", sym, "provider", provider)
			return q, nil
		}
	}

	q, err := p.Fetch(ctx, sym, apiKey)
	if err != nil {
		slog.Warn("quote fetch failed", "symbol", sym, "provider", provider, "error", err)
		return entity.Quote{}, err
	}
	if !q.Valid() {
		return entity.Quote{}, fmt.Errorf("%s %s: %w", provider, sym, domain.ErrNoValidQuote)
	}

	r.cache.Set(ctx, key, q, r.ttl)
	return q, nil
}
