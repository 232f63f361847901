// Package symbol rewrites user-entered tickers into the formats each provider expects.
//
// The default exchange is TSX Venture, written three ways upstream:
//
//	MUR.V     suffix marker (Yahoo style)
//	TSXV:MUR  prefix form (TradingView style)
//	MUR:TSXV  suffix form (Twelve Data style)
package symbol

import "strings"

const (
	// Exchange is the canonical exchange tag.
	Exchange = "TSXV"

	suffixMarker = ".V"
	prefixForm   = Exchange + ":"
	suffixForm   = ":" + Exchange
)

// ForTwelve returns raw in Twelve Data's "SYMBOL:EXCHANGE" format.
// It is idempotent: ForTwelve(ForTwelve(s)) == ForTwelve(s).
func ForTwelve(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if hasPrefixFold(s, prefixForm) {
		return ForTwelve(s[len(prefixForm):])
	}
	if strings.Contains(s, ":") {
		return s
	}
	return stripMarker(s) + suffixForm
}

// Canonical returns the logical identity of raw, independent of spelling.
// MUR, MUR.V, TSXV:MUR and MUR:TSXV share one canonical form.
func Canonical(raw string) string {
	return ForTwelve(raw)
}

// FMPCandidates returns the spellings tried against Financial Modeling Prep,
// in order and without duplicates. The endpoint is inconsistent about which
// spelling resolves for venture-exchange and OTC tickers.
func FMPCandidates(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	cands := []string{s, trimPrefixFold(s, prefixForm)}
	// Tickers listed on another exchange (OTC:MURMF) have no venture spellings.
	if b := bare(s); !strings.Contains(b, ":") {
		cands = append(cands, b+suffixMarker, prefixForm+b)
	}

	out := make([]string, 0, len(cands))
	seen := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		if c == "" || c == suffixMarker || c == prefixForm {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// bare strips every exchange decoration of the default exchange.
func bare(s string) string {
	s = trimPrefixFold(s, prefixForm)
	s = trimSuffixFold(s, suffixForm)
	return stripMarker(s)
}

func stripMarker(s string) string {
	return trimSuffixFold(s, suffixMarker)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func trimPrefixFold(s, prefix string) string {
	if hasPrefixFold(s, prefix) {
		return s[len(prefix):]
	}
	return s
}

func trimSuffixFold(s, suffix string) string {
	if len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s[:len(s)-len(suffix)]
	}
	return s
}
