// Package entity defines the domain models for the marketdata feature.
package entity

import "time"

// TradeTick is a single executed trade as delivered by the market data API:
// a sub-day timestamp in epoch milliseconds, the traded price, and the
// traded volume. The owning ticker and date are supplied by the batch call.
type TradeTick struct {
	Timestamp int64   // epoch milliseconds, finer than the date key
	Price     float64 // execution price
	Volume    int64   // executed size
}

// Trade is a stored trade row.
type Trade struct {
	ID        uint
	TickerID  uint
	Date      time.Time // trading date, midnight UTC
	Timestamp int64
	Price     float64
	Volume    int64
}
