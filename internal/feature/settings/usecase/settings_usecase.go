// Package usecase resolves settings across override, constant, persisted and default layers.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	quoteentity "stock_ticker/internal/feature/quotes/domain/entity"
	"stock_ticker/internal/feature/settings/domain"
	"stock_ticker/internal/feature/settings/domain/entity"
)

// OptionRepository abstracts the persisted option store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type OptionRepository interface {
	List(ctx context.Context) ([]entity.Option, error)
	Set(ctx context.Context, name, value string) error
}

// SettingsUsecase resolves the effective settings of a request.
type SettingsUsecase struct {
	repo      OptionRepository
	constants domain.Values
}

// NewSettingsUsecase creates a SettingsUsecase. repo may be nil, in which case
// the persisted layer is empty. constants are the process-wide values.
func NewSettingsUsecase(repo OptionRepository, constants domain.Values) *SettingsUsecase {
	if constants == nil {
		constants = domain.Values{}
	}
	return &SettingsUsecase{repo: repo, constants: constants}
}

// Load resolves every option with precedence
// override > process constant > persisted option > built-in default.
// An unreadable option store degrades to the remaining layers.
func (u *SettingsUsecase) Load(ctx context.Context, overrides domain.Overrides) (domain.Settings, error) {
	persisted := u.persisted(ctx)
	resolve := func(name, builtin string) string {
		return domain.Resolve(overrides[name], u.constants[name], persisted[name], builtin)
	}

	// An explicit provider override must be valid; a bad value in a lower layer
	// only falls back to the default.
	var provider quoteentity.Provider
	if o := strings.TrimSpace(overrides[domain.OptionProvider]); o != "" {
		p, err := quoteentity.ParseProvider(o)
		if err != nil {
			return domain.Settings{}, err
		}
		provider = p
	} else {
		name := domain.Resolve("", u.constants[domain.OptionProvider], persisted[domain.OptionProvider], string(domain.DefaultProvider))
		p, err := quoteentity.ParseProvider(name)
		if err != nil {
			slog.Warn("invalid provider setting, using default", "value", name, "default", domain.DefaultProvider)
			p = domain.DefaultProvider
		}
		provider = p
	}

	theme := resolve(domain.OptionDefaultTheme, domain.DefaultTheme)
	if !validTheme(theme) {
		theme = domain.DefaultTheme
	}

	return domain.Settings{
		Provider:      provider,
		TwelveAPIKey:  resolve(domain.OptionTwelveAPIKey, ""),
		FMPAPIKey:     resolve(domain.OptionFMPAPIKey, ""),
		DefaultSymbol: resolve(domain.OptionDefaultSymbol, domain.DefaultSymbol),
		DefaultTheme:  theme,
	}, nil
}

// ListOptions returns the persisted options.
func (u *SettingsUsecase) ListOptions(ctx context.Context) ([]entity.Option, error) {
	if u.repo == nil {
		return nil, nil
	}
	return u.repo.List(ctx)
}

// SetOption validates and persists an option value. An empty value clears the option.
func (u *SettingsUsecase) SetOption(ctx context.Context, name, value string) error {
	if !domain.IsKnownOption(name) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
	value = strings.TrimSpace(value)
	if value != "" {
		switch name {
		case domain.OptionProvider:
			p, err := quoteentity.ParseProvider(value)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidOptionValue, err)
			}
			value = string(p)
		case domain.OptionDefaultTheme:
			if !validTheme(value) {
				return fmt.Errorf("%w: theme must be light or dark", ErrInvalidOptionValue)
			}
		}
	}
	if u.repo == nil {
		return fmt.Errorf("option store is not configured")
	}
	return u.repo.Set(ctx, name, value)
}

func (u *SettingsUsecase) persisted(ctx context.Context) domain.Values {
	out := domain.Values{}
	if u.repo == nil {
		return out
	}
	opts, err := u.repo.List(ctx)
	if err != nil {
		slog.Warn("failed to read persisted options", "error", err)
		return out
	}
	for _, o := range opts {
		out[o.Name] = o.Value
	}
	return out
}

func validTheme(t string) bool {
	return t == "light" || t == "dark"
}
