package fmp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"stock_ticker/internal/feature/quotes/adapters/fmp/dto"
	"stock_ticker/internal/feature/quotes/domain"
	"stock_ticker/internal/feature/quotes/domain/entity"
	"stock_ticker/internal/feature/quotes/domain/symbol"
	"stock_ticker/internal/feature/quotes/usecase"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=fmp_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// FMPQuotes fetches quotes from Financial Modeling Prep, trying each
// candidate spelling of a symbol in turn.
type FMPQuotes struct {
	cfg    Config
	client HTTPClient
}

var _ usecase.QuoteProvider = (*FMPQuotes)(nil)

// NewFMPQuotes creates an FMPQuotes client.
func NewFMPQuotes(cfg Config, client HTTPClient) *FMPQuotes {
	return &FMPQuotes{cfg: cfg.withDefaults(), client: client}
}

// Tag returns entity.ProviderFMP.
func (f *FMPQuotes) Tag() entity.Provider { return entity.ProviderFMP }

// CacheSymbol returns the spelling-independent form of raw, so every
// candidate spelling shares one cache entry.
func (f *FMPQuotes) CacheSymbol(raw string) string { return symbol.Canonical(raw) }

// errSkip marks a candidate response that is not a usable quote.
var errSkip = errors.New("candidate skipped")

// Fetch tries the candidates of raw sequentially and returns the quote of the
// first usable response. Later candidates are not requested.
func (f *FMPQuotes) Fetch(ctx context.Context, raw, apiKey string) (entity.Quote, error) {
	if apiKey == "" {
		return entity.Quote{}, domain.ErrMissingAPIKey
	}
	cands := symbol.FMPCandidates(raw)
	if len(cands) == 0 {
		return entity.Quote{}, domain.ErrMissingSymbol
	}

	answered := false
	for _, cand := range cands {
		if err := ctx.Err(); err != nil {
			return entity.Quote{}, fmt.Errorf("fmp: %w: %v", domain.ErrUpstreamUnavailable, err)
		}
		q, err := f.fetchOne(ctx, cand, apiKey)
		if err == nil {
			return q, nil
		}
		if errors.Is(err, errSkip) {
			answered = true
		}
		slog.Debug("fmp candidate failed", "candidate", cand, "error", err)
	}

	if answered {
		return entity.Quote{}, fmt.Errorf("fmp %s: %w", raw, domain.ErrNoValidQuote)
	}
	return entity.Quote{}, fmt.Errorf("fmp %s: %w", raw, domain.ErrUpstreamUnavailable)
}

// fetchOne requests a single candidate under its own timeout.
func (f *FMPQuotes) fetchOne(ctx context.Context, cand, apiKey string) (entity.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	u := fmt.Sprintf("%s/api/v3/quote/%s?%s", f.cfg.BaseURL, url.PathEscape(cand), url.Values{"apikey": {apiKey}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.Quote{}, err
	}

	res, err := f.client.Do(req)
	if err != nil {
		return entity.Quote{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.Quote{}, fmt.Errorf("fmp http %d", res.StatusCode)
	}

	var rows []dto.QuoteRow
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return entity.Quote{}, fmt.Errorf("fmp decode: %w", err)
	}
	if len(rows) == 0 || !rows[0].Price.Valid {
		return entity.Quote{}, errSkip
	}
	return toQuote(cand, rows[0]), nil
}

func toQuote(cand string, row dto.QuoteRow) entity.Quote {
	sym := cand
	if row.Symbol != nil && *row.Symbol != "" {
		sym = *row.Symbol
	}
	name := sym
	if row.Name != nil && *row.Name != "" {
		name = *row.Name
	}
	currency := entity.DefaultCurrency
	if row.Currency != nil && *row.Currency != "" {
		currency = *row.Currency
	}
	return entity.Quote{
		Symbol:    sym,
		Name:      name,
		Price:     row.Price.Ptr(),
		Change:    row.Change.Or(0),
		ChangePct: row.ChangesPercentage.Or(0),
		Currency:  currency,
	}
}
