package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"stock_ticker/internal/feature/quotes/adapters/twelvedata/dto"
	"stock_ticker/internal/feature/quotes/domain"
	"stock_ticker/internal/feature/quotes/domain/entity"
	"stock_ticker/internal/feature/quotes/domain/symbol"
	"stock_ticker/internal/feature/quotes/usecase"
)

// TwelveDataQuotes はTwelve Data外部APIから株価を取得するQuoteProvider実装です。
type TwelveDataQuotes struct {
	cfg    Config
	client *http.Client
}

// TwelveDataQuotesがQuoteProviderを実装していることをコンパイル時に検証します。
var _ usecase.QuoteProvider = (*TwelveDataQuotes)(nil)

// NewTwelveDataQuotes は指定された設定とHTTPクライアントでTwelveDataQuotesの新しいインスタンスを生成します。
func NewTwelveDataQuotes(cfg Config, client *http.Client) *TwelveDataQuotes {
	return &TwelveDataQuotes{cfg: cfg.withDefaults(), client: client}
}

// Tag returns entity.ProviderTwelve.
func (t *TwelveDataQuotes) Tag() entity.Provider { return entity.ProviderTwelve }

// CacheSymbol returns the "SYMBOL:EXCHANGE" form sent upstream.
func (t *TwelveDataQuotes) CacheSymbol(raw string) string { return symbol.ForTwelve(raw) }

// Fetch はTwelve Data APIから1回だけ株価を取得し、entity.Quoteとして返します。
// リトライは行いません。
func (t *TwelveDataQuotes) Fetch(ctx context.Context, raw, apiKey string) (entity.Quote, error) {
	if apiKey == "" {
		return entity.Quote{}, domain.ErrMissingAPIKey
	}
	sym := symbol.ForTwelve(raw)
	if sym == "" {
		return entity.Quote{}, domain.ErrMissingSymbol
	}

	q := url.Values{}
	// クエリパラメータを追加
	q.Set("symbol", sym)
	q.Set("apikey", apiKey)

	// URLを生成
	u := fmt.Sprintf("%s/quote?%s", t.cfg.BaseURL, q.Encode())

	ctx, cancel := context.WithTimeout(ctx, t.cfg.Timeout)
	defer cancel()

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("twelvedata: %w: %v", domain.ErrUpstreamUnavailable, err)
	}

	// リクエストを実行
	res, err := t.client.Do(req)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("twelvedata: %w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.Quote{}, fmt.Errorf("twelvedata http %d: %w", res.StatusCode, domain.ErrUpstreamUnavailable)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.QuoteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.Quote{}, fmt.Errorf("twelvedata decode: %w: %v", domain.ErrUpstreamUnavailable, err)
	}
	if body.IsError() {
		return entity.Quote{}, fmt.Errorf("twelvedata %s: %s: %w", sym, body.Message, domain.ErrNoValidQuote)
	}
	if !body.Price.Valid {
		return entity.Quote{}, fmt.Errorf("twelvedata %s: missing price: %w", sym, domain.ErrNoValidQuote)
	}

	// ドメインエンティティに変換
	return toQuote(sym, body), nil
}

func toQuote(sym string, body dto.QuoteResponse) entity.Quote {
	name := sym
	if body.Name != nil && *body.Name != "" {
		name = *body.Name
	}
	currency := entity.DefaultCurrency
	if body.Currency != nil && *body.Currency != "" {
		currency = *body.Currency
	}
	return entity.Quote{
		Symbol:    sym,
		Name:      name,
		Price:     body.Price.Ptr(),
		Change:    body.Change.Or(0),
		ChangePct: body.PercentChange.Or(0),
		Currency:  currency,
	}
}
