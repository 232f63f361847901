package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote_Valid(t *testing.T) {
	t.Parallel()

	price := 0.0
	assert.False(t, Quote{Symbol: "MUR:TSXV"}.Valid())
	assert.True(t, Quote{Symbol: "MUR:TSXV", Price: &price}.Valid(), "a zero price is still a price")
	assert.Equal(t, 0.0, Quote{}.PriceValue())
}

func TestParseProvider(t *testing.T) {
	t.Parallel()

	p, err := ParseProvider(" FMP ")
	require.NoError(t, err)
	assert.Equal(t, ProviderFMP, p)

	p, err = ParseProvider("twelve")
	require.NoError(t, err)
	assert.Equal(t, ProviderTwelve, p)

	_, err = ParseProvider("yahoo")
	assert.True(t, errors.Is(err, ErrUnknownProvider))
}
