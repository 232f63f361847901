package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_ticker/internal/feature/quotes/domain"
	"stock_ticker/internal/feature/quotes/domain/entity"
	"stock_ticker/internal/feature/quotes/usecase"
	settings "stock_ticker/internal/feature/settings/domain"
)

// perSymbolResolver fails for the symbols listed in fail.
type perSymbolResolver struct {
	fail  map[string]bool
	calls []resolveCall
}

func (r *perSymbolResolver) Resolve(_ context.Context, sym string, provider entity.Provider, apiKey string, useCache bool) (entity.Quote, error) {
	r.calls = append(r.calls, resolveCall{sym, provider, apiKey, useCache})
	if r.fail[sym] {
		return entity.Quote{}, domain.ErrUpstreamUnavailable
	}
	return murQuote(), nil
}

type countingLimiter struct {
	waits int
	err   error
}

func (l *countingLimiter) Wait(context.Context) error {
	l.waits++
	return l.err
}

func TestWarmUsecase_WarmAll(t *testing.T) {
	t.Parallel()

	resolver := &perSymbolResolver{fail: map[string]bool{"OTC:MURMF": true}}
	limiter := &countingLimiter{}
	w := usecase.NewWarmUsecase(resolver, &fakeSettings{cfg: twelveSettings()}, limiter)

	n, err := w.WarmAll(context.Background(), []string{"TSXV:MUR", "OTC:MURMF", "AAPL"})

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, limiter.waits)
	assert.Equal(t, []resolveCall{
		{"TSXV:MUR", entity.ProviderTwelve, "tk", false},
		{"OTC:MURMF", entity.ProviderTwelve, "tk", false},
		{"AAPL", entity.ProviderTwelve, "tk", false},
	}, resolver.calls)
}

func TestWarmUsecase_WarmAll_MissingKey(t *testing.T) {
	t.Parallel()

	w := usecase.NewWarmUsecase(&perSymbolResolver{}, &fakeSettings{cfg: settings.Settings{Provider: entity.ProviderFMP}}, &countingLimiter{})

	n, err := w.WarmAll(context.Background(), []string{"MUR"})
	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
	assert.Zero(t, n)
}

func TestWarmUsecase_WarmAll_LimiterCanceled(t *testing.T) {
	t.Parallel()

	resolver := &perSymbolResolver{}
	w := usecase.NewWarmUsecase(resolver, &fakeSettings{cfg: twelveSettings()}, &countingLimiter{err: context.Canceled})

	n, err := w.WarmAll(context.Background(), []string{"MUR", "AAPL"})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, n)
	assert.Empty(t, resolver.calls)
}
