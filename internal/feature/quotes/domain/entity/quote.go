// Package entity defines the domain models for the quotes feature.
package entity

// DefaultCurrency is used when a provider omits the currency code.
const DefaultCurrency = "CAD"

// Quote is the normalized quote record returned by every provider.
// A Quote with a nil Price is not a usable quote: it must never be cached or rendered.
type Quote struct {
	Symbol    string   `json:"symbol"`    // provider-specific normalized symbol
	Name      string   `json:"name"`      // display name, falls back to Symbol
	Price     *float64 `json:"price"`     // nil means unavailable
	Change    float64  `json:"change"`    // signed day-over-day change
	ChangePct float64  `json:"changePct"` // percentage points as returned upstream (1.23 = 1.23%)
	Currency  string   `json:"currency"`
}

// Valid reports whether the quote carries a price.
func (q Quote) Valid() bool {
	return q.Price != nil
}

// PriceValue returns the price, or 0 when unavailable.
func (q Quote) PriceValue() float64 {
	if q.Price == nil {
		return 0
	}
	return *q.Price
}
