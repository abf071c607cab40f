// Package dto defines data transfer objects for the pairs HTTP API.
package dto

// PairItem represents a tracked pair in the API response.
// It contains only the public-facing fields needed by clients.
type PairItem struct {
	Symbol string `json:"symbol"`
	Market string `json:"market"`
}
