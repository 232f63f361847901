package usecase_test

import (
	"context"
	"sync"
	"time"

	"go.uber.org/mock/gomock"

	"stock_ticker/internal/feature/quotes/domain/entity"
	"stock_ticker/internal/feature/quotes/domain/symbol"
)

// mapCache is an in-memory QuoteCache for tests.
type mapCache struct {
	mu   sync.Mutex
	data map[string]entity.Quote
	sets int
}

func newMapCache() *mapCache { return &mapCache{data: map[string]entity.Quote{}} }

func (c *mapCache) Get(_ context.Context, key string) (entity.Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.data[key]
	return q, ok
}

func (c *mapCache) Set(_ context.Context, key string, q entity.Quote, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = q
	c.sets++
}

func (c *mapCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

func price(v float64) *float64 { return &v }

func murQuote() entity.Quote {
	return entity.Quote{
		Symbol:    "MUR:TSXV",
		Name:      "Murchison Minerals Ltd.",
		Price:     price(0.045),
		Change:    -0.002,
		ChangePct: -4.25532,
		Currency:  "CAD",
	}
}

// newTwelveMock returns a provider mock tagged "twelve" whose CacheSymbol
// behaves like the real Twelve Data client.
func newTwelveMock(ctrl *gomock.Controller) *MockQuoteProvider {
	m := NewMockQuoteProvider(ctrl)
	m.EXPECT().Tag().Return(entity.ProviderTwelve).AnyTimes()
	m.EXPECT().CacheSymbol(gomock.Any()).DoAndReturn(symbol.ForTwelve).AnyTimes()
	return m
}
