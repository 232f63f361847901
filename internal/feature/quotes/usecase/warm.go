package usecase

import (
	"context"
	"log/slog"

	"stock_ticker/internal/feature/quotes/domain"
	"stock_ticker/internal/shared/ratelimiter"
)

// WarmUsecase refreshes cached quotes for a list of symbols, typically the
// banner symbols, so page renders hit the cache.
type WarmUsecase struct {
	resolver    QuoteResolver
	settings    SettingsLoader
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewWarmUsecase creates a WarmUsecase.
func NewWarmUsecase(resolver QuoteResolver, settings SettingsLoader, rateLimiter ratelimiter.RateLimiterInterface) *WarmUsecase {
	return &WarmUsecase{resolver: resolver, settings: settings, rateLimiter: rateLimiter}
}

// WarmAll fetches every symbol fresh from the configured provider and
// returns how many were refreshed. A failing symbol is logged and skipped.
func (w *WarmUsecase) WarmAll(ctx context.Context, symbols []string) (int, error) {
	cfg, err := w.settings.Load(ctx, nil)
	if err != nil {
		return 0, err
	}
	key := cfg.APIKey(cfg.Provider)
	if key == "" {
		return 0, domain.ErrMissingAPIKey
	}

	refreshed := 0
	for _, s := range symbols {
		if err := w.rateLimiter.Wait(ctx); err != nil {
			return refreshed, err
		}
		if _, err := w.resolver.Resolve(ctx, s, cfg.Provider, key, false); err != nil {
			// 1つの銘柄でエラーが発生しても処理を止めずにログに出力し、次の銘柄へ進む
			slog.Error("failed to warm quote", "symbol", s, "provider", cfg.Provider, "error", err)
			continue
		}
		refreshed++
	}
	return refreshed, nil
}
