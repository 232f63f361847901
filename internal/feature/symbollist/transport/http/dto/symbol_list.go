// Package dto defines data transfer objects for the symbollist HTTP API.
package dto

// SymbolItem is one banner entry in the API response.
type SymbolItem struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}
