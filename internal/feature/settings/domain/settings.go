// Package domain defines the settings model and its precedence rules.
package domain

import (
	"strings"

	"stock_ticker/internal/feature/quotes/domain/entity"
)

// Option names, shared by the persisted store and the config layer.
const (
	OptionProvider      = "provider"
	OptionTwelveAPIKey  = "twelve_api_key"
	OptionFMPAPIKey     = "fmp_api_key"
	OptionDefaultSymbol = "default_symbol"
	OptionDefaultTheme  = "default_theme"
)

// OptionNames lists every recognized option.
var OptionNames = []string{
	OptionProvider,
	OptionTwelveAPIKey,
	OptionFMPAPIKey,
	OptionDefaultSymbol,
	OptionDefaultTheme,
}

// Built-in defaults, the last layer of precedence.
const (
	DefaultProvider = entity.ProviderTwelve
	DefaultSymbol   = "MUR:TSXV"
	DefaultTheme    = "dark"
)

// Settings is the configuration resolved for one request.
type Settings struct {
	Provider      entity.Provider
	TwelveAPIKey  string
	FMPAPIKey     string
	DefaultSymbol string
	DefaultTheme  string
}

// APIKey returns the key configured for p.
func (s Settings) APIKey(p entity.Provider) string {
	switch p {
	case entity.ProviderTwelve:
		return s.TwelveAPIKey
	case entity.ProviderFMP:
		return s.FMPAPIKey
	default:
		return ""
	}
}

// Values holds one precedence layer. Empty values defer to the next layer.
type Values map[string]string

// Overrides are explicit per-call values, the first layer of precedence.
type Overrides = Values

// Resolve returns the first non-empty value in precedence order:
// per-call override, process-wide constant, persisted option, built-in default.
func Resolve(override, constant, persisted, builtin string) string {
	for _, v := range []string{override, constant, persisted, builtin} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// IsKnownOption reports whether name is a recognized option.
func IsKnownOption(name string) bool {
	for _, n := range OptionNames {
		if n == name {
			return true
		}
	}
	return false
}
