package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"stock_ticker/internal/app/di"
	"stock_ticker/internal/app/router"
	"stock_ticker/internal/platform/config"
)

func main() {
	flags := pflag.NewFlagSet("server", pflag.ExitOnError)
	flags.String("server-addr", ":8080", "listen address")
	flags.String("log-level", "info", "debug, info, warn or error")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	config.InitLogger(os.Stdout, cfg.LogLevel)
	if config.ParseLevel(cfg.LogLevel) != slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := di.NewApp(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	if _, err := app.Symbols.SeedDefaults(ctx); err != nil {
		slog.Warn("failed to seed banner symbols", "error", err)
	}

	// Redisがない場合はプロセス内キャッシュの期限切れエントリを定期的に削除
	if app.Cache.Memory != nil {
		go app.Cache.Memory.Run(ctx, cfg.Cache.SweepInterval)
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router.NewRouter(app.QuoteHandler(), app.SymbolHandler(), app.Ping),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "address", cfg.ServerAddr, "providers", app.Registry.Tags())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
