// Package dto defines the Twelve Data wire format.
package dto

import (
	"encoding/json"

	"stock_ticker/internal/shared/jsonnum"
)

// QuoteResponse is the body of GET /quote. Error responses carry code,
// message and status:"error" instead of quote fields.
type QuoteResponse struct {
	Name          *string         `json:"name"`
	Price         jsonnum.Float   `json:"price"`
	Change        jsonnum.Float   `json:"change"`
	PercentChange jsonnum.Float   `json:"percent_change"`
	Currency      *string         `json:"currency"`
	Code          json.RawMessage `json:"code"`
	Status        string          `json:"status"`
	Message       string          `json:"message"`
}

// IsError reports whether the body is an error response.
func (r QuoteResponse) IsError() bool {
	if len(r.Code) > 0 && string(r.Code) != "null" {
		return true
	}
	return r.Status == "error"
}
