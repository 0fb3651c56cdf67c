// Package dto defines the HTTP request/response shapes for the marketdata feature.
package dto

// TradeResponse is the JSON representation of one stored trade tick.
type TradeResponse struct {
	Date      string  `json:"date"`
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
	Volume    int64   `json:"volume"`
}

// QuoteResponse is the JSON representation of one stored quote tick.
type QuoteResponse struct {
	Date      string  `json:"date"`
	Timestamp int64   `json:"timestamp"`
	AskPrice  float64 `json:"ask_price"`
	AskVolume int64   `json:"ask_volume"`
	BidPrice  float64 `json:"bid_price"`
	BidVolume int64   `json:"bid_volume"`
}

// DayStatusResponse reports the completeness marker for one day.
type DayStatusResponse struct {
	Symbol   string `json:"symbol"`
	Kind     string `json:"kind"`
	Date     string `json:"date"`
	Complete bool   `json:"complete"`
}

// CompletedDatesResponse lists every fully ingested date for a symbol and kind.
type CompletedDatesResponse struct {
	Symbol string   `json:"symbol"`
	Kind   string   `json:"kind"`
	Dates  []string `json:"dates"`
}
