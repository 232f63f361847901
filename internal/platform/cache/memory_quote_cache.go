package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stock_ticker/internal/feature/quotes/domain/entity"
	"stock_ticker/internal/feature/quotes/usecase"
)

type memoryEntry struct {
	quote     entity.Quote
	expiresAt time.Time
}

// MemoryQuoteCache is a process-local QuoteCache used when Redis is not configured.
// Expired entries are dropped lazily on read and in bulk by Sweep.
type MemoryQuoteCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

var _ usecase.QuoteCache = (*MemoryQuoteCache)(nil)

// NewMemoryQuoteCache creates an empty MemoryQuoteCache.
func NewMemoryQuoteCache() *MemoryQuoteCache {
	return &MemoryQuoteCache{entries: map[string]memoryEntry{}, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (c *MemoryQuoteCache) WithClock(now func() time.Time) *MemoryQuoteCache {
	c.now = now
	return c
}

// Get returns the quote for key while it is fresh.
func (c *MemoryQuoteCache) Get(_ context.Context, key string) (entity.Quote, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return entity.Quote{}, false
	}
	if !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		// 別のgoroutineが書き換えていなければ削除
		if cur, ok := c.entries[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return entity.Quote{}, false
	}
	return e.quote, true
}

// Set stores q under key for ttl, replacing any previous entry.
// Quotes without a price are never stored.
func (c *MemoryQuoteCache) Set(_ context.Context, key string, q entity.Quote, ttl time.Duration) {
	if !q.Valid() {
		return
	}
	if ttl <= 0 {
		ttl = usecase.DefaultTTL
	}
	c.mu.Lock()
	c.entries[key] = memoryEntry{quote: q, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryQuoteCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep removes every expired entry and returns how many were removed.
func (c *MemoryQuoteCache) Sweep() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is canceled.
func (c *MemoryQuoteCache) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.Sweep(); n > 0 {
				slog.Debug("swept expired quotes", "removed", n)
			}
		}
	}
}
