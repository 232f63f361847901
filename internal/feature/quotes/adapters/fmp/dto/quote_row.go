// Package dto defines the Financial Modeling Prep wire format.
package dto

import "stock_ticker/internal/shared/jsonnum"

// QuoteRow is one element of the array returned by GET /api/v3/quote/{symbol}.
type QuoteRow struct {
	Name              *string       `json:"name"`
	Symbol            *string       `json:"symbol"`
	Price             jsonnum.Float `json:"price"`
	Change            jsonnum.Float `json:"change"`
	ChangesPercentage jsonnum.Float `json:"changesPercentage"`
	Currency          *string       `json:"currency"`
}
