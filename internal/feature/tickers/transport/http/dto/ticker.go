// Package dto defines the HTTP request/response shapes for the tickers feature.
package dto

// RegisterTickerRequest is the body of POST /tickers.
type RegisterTickerRequest struct {
	Symbol   string `json:"symbol" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Sector   string `json:"sector"`
	Exchange string `json:"exchange" binding:"required"`
}

// TickerResponse is the JSON representation of a registered ticker.
type TickerResponse struct {
	ID       uint   `json:"id"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Exchange string `json:"exchange"`
}
