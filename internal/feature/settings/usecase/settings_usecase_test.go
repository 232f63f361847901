package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quoteentity "stock_ticker/internal/feature/quotes/domain/entity"
	"stock_ticker/internal/feature/settings/domain"
	"stock_ticker/internal/feature/settings/domain/entity"
)

// mockOptionRepository はテスト用のOptionRepositoryモック実装です。
type mockOptionRepository struct {
	opts    []entity.Option
	listErr error
	setFn   func(ctx context.Context, name, value string) error
}

func (m *mockOptionRepository) List(ctx context.Context) ([]entity.Option, error) {
	return m.opts, m.listErr
}

func (m *mockOptionRepository) Set(ctx context.Context, name, value string) error {
	if m.setFn != nil {
		return m.setFn(ctx, name, value)
	}
	return nil
}

func TestSettingsUsecase_Load_Defaults(t *testing.T) {
	t.Parallel()

	u := NewSettingsUsecase(nil, nil)
	s, err := u.Load(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, quoteentity.ProviderTwelve, s.Provider)
	assert.Equal(t, "MUR:TSXV", s.DefaultSymbol)
	assert.Equal(t, "dark", s.DefaultTheme)
	assert.Empty(t, s.TwelveAPIKey)
	assert.Empty(t, s.FMPAPIKey)
}

func TestSettingsUsecase_Load_Precedence(t *testing.T) {
	t.Parallel()

	repo := &mockOptionRepository{opts: []entity.Option{
		{Name: domain.OptionProvider, Value: "fmp"},
		{Name: domain.OptionTwelveAPIKey, Value: "persisted-td"},
		{Name: domain.OptionFMPAPIKey, Value: "persisted-fmp"},
		{Name: domain.OptionDefaultSymbol, Value: "OTC:MURMF"},
		{Name: domain.OptionDefaultTheme, Value: "light"},
	}}
	constants := domain.Values{
		domain.OptionTwelveAPIKey: "const-td",
	}
	u := NewSettingsUsecase(repo, constants)

	s, err := u.Load(context.Background(), domain.Overrides{
		domain.OptionFMPAPIKey: "override-fmp",
	})
	require.NoError(t, err)

	assert.Equal(t, quoteentity.ProviderFMP, s.Provider, "persisted")
	assert.Equal(t, "const-td", s.TwelveAPIKey, "constant beats persisted")
	assert.Equal(t, "override-fmp", s.FMPAPIKey, "override beats persisted")
	assert.Equal(t, "OTC:MURMF", s.DefaultSymbol)
	assert.Equal(t, "light", s.DefaultTheme)
}

func TestSettingsUsecase_Load_ProviderOverride(t *testing.T) {
	t.Parallel()

	u := NewSettingsUsecase(nil, domain.Values{domain.OptionProvider: "fmp"})

	s, err := u.Load(context.Background(), domain.Overrides{domain.OptionProvider: "twelve"})
	require.NoError(t, err)
	assert.Equal(t, quoteentity.ProviderTwelve, s.Provider)

	_, err = u.Load(context.Background(), domain.Overrides{domain.OptionProvider: "yahoo"})
	assert.ErrorIs(t, err, quoteentity.ErrUnknownProvider)
}

// TestSettingsUsecase_Load_InvalidLowerLayers は保存値が不正な場合にデフォルトへフォールバックすることを検証します。
func TestSettingsUsecase_Load_InvalidLowerLayers(t *testing.T) {
	t.Parallel()

	repo := &mockOptionRepository{opts: []entity.Option{
		{Name: domain.OptionProvider, Value: "yahoo"},
		{Name: domain.OptionDefaultTheme, Value: "neon"},
	}}
	s, err := NewSettingsUsecase(repo, nil).Load(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, quoteentity.ProviderTwelve, s.Provider)
	assert.Equal(t, "dark", s.DefaultTheme)
}

func TestSettingsUsecase_Load_StoreErrorDegrades(t *testing.T) {
	t.Parallel()

	repo := &mockOptionRepository{listErr: errors.New("db down")}
	u := NewSettingsUsecase(repo, domain.Values{domain.OptionTwelveAPIKey: "const-td"})

	s, err := u.Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "const-td", s.TwelveAPIKey)
	assert.Equal(t, "MUR:TSXV", s.DefaultSymbol)
}

func TestSettingsUsecase_SetOption(t *testing.T) {
	t.Parallel()

	var gotName, gotValue string
	repo := &mockOptionRepository{setFn: func(ctx context.Context, name, value string) error {
		gotName, gotValue = name, value
		return nil
	}}
	u := NewSettingsUsecase(repo, nil)
	ctx := context.Background()

	require.NoError(t, u.SetOption(ctx, domain.OptionProvider, " FMP "))
	assert.Equal(t, domain.OptionProvider, gotName)
	assert.Equal(t, "fmp", gotValue, "provider is normalized")

	require.NoError(t, u.SetOption(ctx, domain.OptionTwelveAPIKey, ""))
	assert.Equal(t, "", gotValue, "empty clears")

	assert.ErrorIs(t, u.SetOption(ctx, "sst_provider", "fmp"), ErrUnknownOption)
	assert.ErrorIs(t, u.SetOption(ctx, domain.OptionProvider, "yahoo"), ErrInvalidOptionValue)
	assert.ErrorIs(t, u.SetOption(ctx, domain.OptionDefaultTheme, "neon"), ErrInvalidOptionValue)
}

func TestSettingsUsecase_SetOption_NoStore(t *testing.T) {
	t.Parallel()

	err := NewSettingsUsecase(nil, nil).SetOption(context.Background(), domain.OptionProvider, "fmp")
	assert.Error(t, err)
}
