package entity

import "time"

// QuoteTick is a single bid/ask snapshot as delivered by the market data API.
type QuoteTick struct {
	Timestamp int64 // epoch milliseconds
	AskPrice  float64
	AskVolume int64
	BidPrice  float64
	BidVolume int64
}

// Quote is a stored quote row.
type Quote struct {
	ID        uint
	TickerID  uint
	Date      time.Time
	Timestamp int64
	AskPrice  float64
	AskVolume int64
	BidPrice  float64
	BidVolume int64
}
