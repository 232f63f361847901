package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Provider identifies an upstream quote source.
type Provider string

const (
	// ProviderTwelve is Twelve Data, which expects "SYMBOL:EXCHANGE".
	ProviderTwelve Provider = "twelve"
	// ProviderFMP is Financial Modeling Prep, queried with several candidate spellings.
	ProviderFMP Provider = "fmp"
)

// ErrUnknownProvider is returned for provider tags other than twelve and fmp.
var ErrUnknownProvider = errors.New("unknown provider")

// ParseProvider converts a configuration value into a Provider.
func ParseProvider(s string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderTwelve:
		return ProviderTwelve, nil
	case ProviderFMP:
		return ProviderFMP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
	}
}

func (p Provider) String() string { return string(p) }
