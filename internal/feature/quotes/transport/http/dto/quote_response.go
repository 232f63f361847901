// Package dto defines data transfer objects for the quotes HTTP API.
package dto

// QuoteData is a resolved quote as rendered to clients.
type QuoteData struct {
	Symbol    string   `json:"symbol"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price"`
	Change    float64  `json:"change"`
	ChangePct float64  `json:"changePct"`
	Currency  string   `json:"currency"`
}

// QuoteResponse is the {ok, data?, err?} envelope returned by every quote
// endpoint, on success and on failure alike.
type QuoteResponse struct {
	OK   bool       `json:"ok"`
	Data *QuoteData `json:"data,omitempty"`
	Err  string     `json:"err,omitempty"`
}

// NonceResponse carries a refresh token for the page to embed.
type NonceResponse struct {
	Nonce     string `json:"nonce"`
	ExpiresIn int64  `json:"expiresIn"`
}
