package usecase

import (
	"context"
	"log/slog"
	"strings"

	"stock_ticker/internal/feature/quotes/domain"
	"stock_ticker/internal/feature/quotes/domain/entity"
	settings "stock_ticker/internal/feature/settings/domain"
)

// QuoteResolver resolves a quote for a symbol from a provider.
type QuoteResolver interface {
	Resolve(ctx context.Context, sym string, provider entity.Provider, apiKey string, useCache bool) (entity.Quote, error)
}

// SettingsLoader resolves the settings of one request.
type SettingsLoader interface {
	Load(ctx context.Context, overrides settings.Overrides) (settings.Settings, error)
}

// TokenVerifier checks request-forgery tokens.
type TokenVerifier interface {
	Verify(token string) bool
}

// Result is the structured outcome returned to quote endpoint callers.
type Result struct {
	OK   bool          `json:"ok"`
	Data *entity.Quote `json:"data,omitempty"`
	Err  string        `json:"err,omitempty"`
}

func success(q entity.Quote) Result { return Result{OK: true, Data: &q} }

func failure(err error) Result { return Result{OK: false, Err: domain.ReasonCode(err)} }

// QuoteService serves quote requests from pages and from client-side refresh polling.
type QuoteService struct {
	resolver QuoteResolver
	settings SettingsLoader
	tokens   TokenVerifier
}

// NewQuoteService creates a QuoteService.
func NewQuoteService(resolver QuoteResolver, settings SettingsLoader, tokens TokenVerifier) *QuoteService {
	return &QuoteService{resolver: resolver, settings: settings, tokens: tokens}
}

// Refresh handles a polling refresh: it verifies the token, then fetches a
// fresh quote from the configured provider, bypassing the cached entry but
// rewriting it. It never panics; every failure is a Result with OK=false.
func (s *QuoteService) Refresh(ctx context.Context, sym, nonce string) (res Result) {
	defer recoverResult(&res, sym)

	if !s.tokens.Verify(nonce) {
		return failure(domain.ErrInvalidToken)
	}
	sym = strings.TrimSpace(sym)
	if sym == "" {
		return failure(domain.ErrMissingSymbol)
	}

	cfg, err := s.settings.Load(ctx, nil)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		return failure(err)
	}
	key := cfg.APIKey(cfg.Provider)
	if key == "" {
		return failure(domain.ErrMissingAPIKey)
	}

	q, err := s.resolver.Resolve(ctx, sym, cfg.Provider, key, false)
	if err != nil {
		return failure(err)
	}
	return success(q)
}

// Lookup handles a page render: an empty symbol selects the configured
// default and providerOverride, when set, replaces the configured provider.
// Cached quotes are served while fresh.
func (s *QuoteService) Lookup(ctx context.Context, sym, providerOverride string) (res Result) {
	defer recoverResult(&res, sym)

	cfg, err := s.settings.Load(ctx, settings.Overrides{settings.OptionProvider: providerOverride})
	if err != nil {
		slog.Warn("failed to load settings", "error", err)
		return failure(err)
	}

	sym = strings.TrimSpace(sym)
	if sym == "" {
		sym = cfg.DefaultSymbol
	}
	if sym == "" {
		return failure(domain.ErrMissingSymbol)
	}
	key := cfg.APIKey(cfg.Provider)
	if key == "" {
		return failure(domain.ErrMissingAPIKey)
	}

	q, err := s.resolver.Resolve(ctx, sym, cfg.Provider, key, true)
	if err != nil {
		return failure(err)
	}
	return success(q)
}

func recoverResult(res *Result, sym string) {
	if r := recover(); r != nil {
		slog.Error("quote request panicked", "symbol", sym, "panic", r)
		*res = Result{OK: false}
	}
}
