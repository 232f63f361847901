// Package domain defines domain-level errors for the quotes feature.
package domain

import (
	"errors"

	"stock_ticker/internal/feature/quotes/domain/entity"
)

// Failures of a quote resolution. None of them is fatal; callers render
// a "data unavailable" fallback.
var (
	// ErrInvalidToken indicates the request-forgery token did not verify.
	ErrInvalidToken = errors.New("invalid request token")

	// ErrMissingSymbol indicates an empty ticker symbol.
	ErrMissingSymbol = errors.New("symbol is required")

	// ErrMissingAPIKey indicates no API key is configured for the selected provider.
	ErrMissingAPIKey = errors.New("api key is not configured")

	// ErrUpstreamUnavailable covers network failures, timeouts, HTTP errors and malformed bodies.
	ErrUpstreamUnavailable = errors.New("quote provider unavailable")

	// ErrNoValidQuote indicates the provider answered without a usable price.
	ErrNoValidQuote = errors.New("no valid quote")

	// ErrUnknownProvider indicates a provider tag that is not registered.
	ErrUnknownProvider = entity.ErrUnknownProvider
)

// Reason codes reported to the refresh endpoint's callers.
const (
	ReasonBadNonce = "bad_nonce"
	ReasonNoSymbol = "no_symbol"
	ReasonNoKey    = "no_key"
)

// ReasonCode maps an error to the code reported to clients. Failures without a
// dedicated code map to the empty string.
func ReasonCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidToken):
		return ReasonBadNonce
	case errors.Is(err, ErrMissingSymbol):
		return ReasonNoSymbol
	case errors.Is(err, ErrMissingAPIKey):
		return ReasonNoKey
	default:
		return ""
	}
}
