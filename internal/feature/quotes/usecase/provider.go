// Package usecase implements quote resolution for the quotes feature.
package usecase

import (
	"context"

	"stock_ticker/internal/feature/quotes/domain/entity"
)

// QuoteProvider fetches quotes from one upstream API.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
//
//go:generate mockgen -package=usecase_test -destination=mock_quote_provider_test.go -source=provider.go QuoteProvider
type QuoteProvider interface {
	// Tag identifies the provider.
	Tag() entity.Provider
	// CacheSymbol returns the normalized symbol raw resolves to; it keys the cache.
	CacheSymbol(raw string) string
	// Fetch returns a valid quote, or ErrUpstreamUnavailable / ErrNoValidQuote.
	Fetch(ctx context.Context, symbol, apiKey string) (entity.Quote, error)
}
