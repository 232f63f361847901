package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stock_ticker/internal/feature/quotes/domain/entity"
)

func TestForTwelve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"MUR.V", "MUR:TSXV"},
		{"mur.v", "mur:TSXV"},
		{"TSXV:MUR", "MUR:TSXV"},
		{"tsxv:MUR", "MUR:TSXV"},
		{"TSXV:MUR.V", "MUR:TSXV"},
		{"MUR", "MUR:TSXV"},
		{"MUR:TSXV", "MUR:TSXV"},
		{"OTC:MURMF", "OTC:MURMF"},
		{"  MUR  ", "MUR:TSXV"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ForTwelve(tt.in))
		})
	}
}

// TestForTwelve_Idempotent は正規化済みの銘柄を再度正規化しても値が変わらないことを検証します。
func TestForTwelve_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"MUR", "MUR.V", "mur.v", "TSXV:MUR", "MUR:TSXV", "OTC:MURMF",
		"TSXV:", "TSXV:TSXV:X", "TSXV:MUR:TSXV", ".V", ":", "A:B:C",
		" TSXV: MUR ", "MUR .V", "tsxv:tsxv:a.v",
	}
	for _, in := range inputs {
		once := ForTwelve(in)
		assert.Equal(t, once, ForTwelve(once), "input %q", in)
	}
}

func TestCanonical_SharedAcrossSpellings(t *testing.T) {
	t.Parallel()

	want := Canonical("MUR")
	for _, s := range []string{"MUR.V", "TSXV:MUR", "MUR:TSXV", " MUR.v "} {
		assert.Equal(t, want, Canonical(s), "spelling %q", s)
	}
}

func TestFMPCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain ticker", "MUR", []string{"MUR", "MUR.V", "TSXV:MUR"}},
		{"suffix marker", "MUR.V", []string{"MUR.V", "TSXV:MUR"}},
		{"prefix form", "TSXV:MUR", []string{"TSXV:MUR", "MUR", "MUR.V"}},
		{"twelve form", "MUR:TSXV", []string{"MUR:TSXV", "MUR.V", "TSXV:MUR"}},
		{"other exchange", "OTC:MURMF", []string{"OTC:MURMF"}},
		{"empty", "  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FMPCandidates(tt.in)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), 4)
		})
	}
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	a := CacheKey(entity.ProviderTwelve, "MUR:TSXV")
	assert.Equal(t, a, CacheKey(entity.ProviderTwelve, "MUR:TSXV"), "deterministic")
	assert.NotEqual(t, a, CacheKey(entity.ProviderFMP, "MUR:TSXV"), "provider is part of the key")
	assert.NotEqual(t, a, CacheKey(entity.ProviderTwelve, "MURMF"))
	assert.Len(t, a, len("twelve:")+32)
}
