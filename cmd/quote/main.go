package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"stock_ticker/internal/app/di"
	"stock_ticker/internal/feature/quotes/domain/entity"
	settings "stock_ticker/internal/feature/settings/domain"
	"stock_ticker/internal/platform/config"
)

func main() {
	flags := pflag.NewFlagSet("quote", pflag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: quote [flags] SYMBOL...")
		flags.PrintDefaults()
	}
	flags.String("log-level", "warn", "debug, info, warn or error")
	provider := flags.String("provider", "", "provider to query (twelve or fmp); defaults to the configured one")
	apiKey := flags.String("api-key", "", "API key for the provider; defaults to the configured one")
	noCache := flags.Bool("no-cache", false, "skip cached quotes and refresh them")
	shares := flags.Float64("shares", 0, "also print the value of this many shares")
	timeout := flags.Duration("timeout", 30*time.Second, "overall deadline")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	config.InitLogger(os.Stderr, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	app, err := di.NewApp(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	resolved, err := app.Settings.Load(ctx, settings.Overrides{settings.OptionProvider: *provider})
	if err != nil {
		fmt.Fprintln(os.Stderr, "quote:", err)
		os.Exit(2)
	}
	key := *apiKey
	if key == "" {
		key = resolved.APIKey(resolved.Provider)
	}

	symbols := flags.Args()
	if len(symbols) == 0 {
		symbols = []string{resolved.DefaultSymbol}
	}

	// 銘柄ごとに並行して取得し、結果は入力順に表示する
	quotes := make([]entity.Quote, len(symbols))
	errs := make([]error, len(symbols))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range symbols {
		g.Go(func() error {
			quotes[i], errs[i] = app.Resolver.Resolve(gctx, s, resolved.Provider, key, !*noCache)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, s := range symbols {
		if errs[i] != nil {
			failed++
			fmt.Printf("%-12s unavailable (%v)\n", s, errs[i])
			continue
		}
		fmt.Println(formatQuote(quotes[i], *shares))
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// formatQuote renders one line of output.
func formatQuote(q entity.Quote, shares float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %-32s %s %s", q.Symbol, q.Name, formatPrice(q.PriceValue()), q.Currency)
	fmt.Fprintf(&b, "  %+g (%+.2f%%)", q.Change, q.ChangePct)
	if shares > 0 {
		fmt.Fprintf(&b, "  value %s", formatValue(q.PriceValue()*shares, q.Currency))
	}
	return b.String()
}
