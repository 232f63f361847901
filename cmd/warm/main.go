package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"stock_ticker/internal/app/di"
	"stock_ticker/internal/platform/config"
)

func main() {
	flags := pflag.NewFlagSet("warm", pflag.ExitOnError)
	flags.String("log-level", "info", "debug, info, warn or error")
	timeout := flags.Duration("timeout", 5*time.Minute, "overall deadline")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	config.InitLogger(os.Stdout, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	app, err := di.NewApp(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	if app.Cache.Memory != nil {
		// A process-local cache does not outlive this command.
		slog.Warn("Redis is not configured; warmed quotes are discarded on exit")
	}

	if _, err := app.Symbols.SeedDefaults(ctx); err != nil {
		slog.Warn("failed to seed banner symbols", "error", err)
	}

	// 明示的に指定された銘柄があればそれを、なければバナー銘柄を対象にする
	symbols := flags.Args()
	if len(symbols) == 0 {
		if symbols, err = app.Symbols.ListActiveCodes(ctx); err != nil {
			slog.Error("failed to load symbols", "error", err)
			os.Exit(1)
		}
	}

	n, err := app.NewWarmUsecase().WarmAll(ctx, symbols)
	if err != nil {
		slog.Error("warm failed", "refreshed", n, "error", err)
		os.Exit(1)
	}
	slog.Info("warm ok", "refreshed", n, "total", len(symbols))
}
