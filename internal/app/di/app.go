package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	quotehandler "stock_ticker/internal/feature/quotes/transport/handler"
	quoteusecase "stock_ticker/internal/feature/quotes/usecase"
	settingsadapters "stock_ticker/internal/feature/settings/adapters"
	settingsentity "stock_ticker/internal/feature/settings/domain/entity"
	settingsusecase "stock_ticker/internal/feature/settings/usecase"
	symbollistadapters "stock_ticker/internal/feature/symbollist/adapters"
	symbolentity "stock_ticker/internal/feature/symbollist/domain/entity"
	symbollisthandler "stock_ticker/internal/feature/symbollist/transport/handler"
	symbollistusecase "stock_ticker/internal/feature/symbollist/usecase"
	"stock_ticker/internal/platform/config"
	infradb "stock_ticker/internal/platform/db"
	"stock_ticker/internal/platform/nonce"
	"stock_ticker/internal/shared/ratelimiter"
)

// Models are the gorm models migrated at startup.
var Models = []any{&settingsentity.Option{}, &symbolentity.Symbol{}}

// App holds the wired application components shared by every binary.
type App struct {
	Config config.Config
	DB     *gorm.DB
	Cache  QuoteCache

	Registry *quoteusecase.Registry
	Resolver *quoteusecase.Resolver
	Quotes   *quoteusecase.QuoteService
	Settings *settingsusecase.SettingsUsecase
	Symbols  *symbollistusecase.SymbolUsecase
	Nonces   *nonce.Manager
}

// NewApp opens the database and the quote cache and wires the usecases.
func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	db, err := infradb.OpenDB(infradb.Config{
		Driver:  cfg.Database.Driver,
		DSN:     cfg.Database.DSN,
		Migrate: cfg.Database.Migrate,
	}, Models...)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	secret := cfg.Nonce.Secret
	if secret == "" {
		// 開発中の注意喚起: 再起動で発行済みのトークンは無効になる
		slog.Warn("nonce secret is not set; generating an ephemeral one")
		if secret, err = nonce.RandomSecret(); err != nil {
			return nil, err
		}
	}

	quoteCache := NewQuoteCache(ctx, cfg)
	registry := quoteusecase.NewRegistry(NewProviders(cfg)...)
	resolver := quoteusecase.NewResolver(registry, quoteCache, cfg.Cache.TTL)
	settingsUC := settingsusecase.NewSettingsUsecase(settingsadapters.NewOptionRepository(db), cfg.Constants)
	nonces := nonce.NewManager(secret, cfg.Nonce.Lifetime, nonce.ActionQuoteRefresh)

	return &App{
		Config:   cfg,
		DB:       db,
		Cache:    quoteCache,
		Registry: registry,
		Resolver: resolver,
		Quotes:   quoteusecase.NewQuoteService(resolver, settingsUC, nonces),
		Settings: settingsUC,
		Symbols:  symbollistusecase.NewSymbolUsecase(symbollistadapters.NewSymbolRepository(db)),
		Nonces:   nonces,
	}, nil
}

// NewWarmUsecase creates the cache warmer limited to the configured rate.
func (a *App) NewWarmUsecase() *quoteusecase.WarmUsecase {
	limiter := ratelimiter.NewRateLimiter(a.Config.RateLimitPerMinute, time.Minute)
	return quoteusecase.NewWarmUsecase(a.Resolver, a.Settings, limiter)
}

// QuoteHandler creates the HTTP handler of the quotes feature.
func (a *App) QuoteHandler() *quotehandler.QuoteHandler {
	return quotehandler.NewQuoteHandler(a.Quotes, a.Nonces, a.Nonces.Lifetime())
}

// SymbolHandler creates the HTTP handler of the banner symbol list.
func (a *App) SymbolHandler() *symbollisthandler.SymbolHandler {
	return symbollisthandler.NewSymbolHandler(a.Symbols)
}

// Ping checks the database and, when used, Redis.
func (a *App) Ping(ctx context.Context) error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if a.Cache.Redis != nil {
		if err := a.Cache.Redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

// Close releases the cache and database connections.
func (a *App) Close() {
	a.Cache.Close()
	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}
}
