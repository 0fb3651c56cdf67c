// Package dto defines the wire shapes returned by the Polygon API.
package dto

// CompanyResponse is the body of GET /v1/meta/symbols/{ticker}/company.
type CompanyResponse struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Exchange string `json:"exchangeSymbol"`
}

// TradeResult is one element of a historic trades page. Field names follow
// the compressed keys of the v2 ticks endpoints.
type TradeResult struct {
	Timestamp int64   `json:"t"`
	Price     float64 `json:"p"`
	Size      int64   `json:"s"`
}

// TradesResponse is the body of GET /v2/ticks/stocks/trades/{ticker}/{date}.
type TradesResponse struct {
	ResultsCount int           `json:"results_count"`
	Results      []TradeResult `json:"results"`
	Success      bool          `json:"success"`
}

// QuoteResult is one element of a historic NBBO page.
type QuoteResult struct {
	Timestamp int64   `json:"t"`
	BidPrice  float64 `json:"p"`
	BidSize   int64   `json:"s"`
	AskPrice  float64 `json:"P"`
	AskSize   int64   `json:"S"`
}

// QuotesResponse is the body of GET /v2/ticks/stocks/nbbo/{ticker}/{date}.
type QuotesResponse struct {
	ResultsCount int           `json:"results_count"`
	Results      []QuoteResult `json:"results"`
	Success      bool          `json:"success"`
}
