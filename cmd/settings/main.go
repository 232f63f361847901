package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"stock_ticker/internal/app/di"
	"stock_ticker/internal/feature/settings/domain"
	"stock_ticker/internal/feature/settings/domain/entity"
	"stock_ticker/internal/platform/config"
)

// optionStore is the part of the settings usecase this command drives.
type optionStore interface {
	ListOptions(ctx context.Context) ([]entity.Option, error)
	SetOption(ctx context.Context, name, value string) error
	Load(ctx context.Context, overrides domain.Overrides) (domain.Settings, error)
}

func main() {
	flags := pflag.NewFlagSet("settings", pflag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: settings list | settings effective | settings set NAME VALUE")
		flags.PrintDefaults()
	}
	flags.String("log-level", "warn", "debug, info, warn or error")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	config.InitLogger(os.Stderr, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	app, err := di.NewApp(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := run(ctx, os.Stdout, app.Settings, flags.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "settings:", err)
		flags.Usage()
		os.Exit(2)
	}
}

func run(ctx context.Context, w io.Writer, store optionStore, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "list":
		opts, err := store.ListOptions(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, o := range opts {
			fmt.Fprintf(tw, "%s\t%s\n", o.Name, mask(o.Name, o.Value))
		}
		return tw.Flush()
	case "effective":
		s, err := store.Load(ctx, nil)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\n", domain.OptionProvider, s.Provider)
		fmt.Fprintf(tw, "%s\t%s\n", domain.OptionTwelveAPIKey, mask(domain.OptionTwelveAPIKey, s.TwelveAPIKey))
		fmt.Fprintf(tw, "%s\t%s\n", domain.OptionFMPAPIKey, mask(domain.OptionFMPAPIKey, s.FMPAPIKey))
		fmt.Fprintf(tw, "%s\t%s\n", domain.OptionDefaultSymbol, s.DefaultSymbol)
		fmt.Fprintf(tw, "%s\t%s\n", domain.OptionDefaultTheme, s.DefaultTheme)
		return tw.Flush()
	case "set":
		if len(args) != 3 {
			return fmt.Errorf("set takes NAME VALUE")
		}
		if err := store.SetOption(ctx, args[1], args[2]); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s updated\n", args[1])
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// mask hides all but the last four characters of API keys.
func mask(name, value string) string {
	if name != domain.OptionTwelveAPIKey && name != domain.OptionFMPAPIKey {
		return value
	}
	if value == "" {
		return "(unset)"
	}
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}
