package entity

// Kind names which tick table a completeness marker refers to.
type Kind string

// The two tick tables tracked by the summary.
const (
	KindTrades Kind = "trades"
	KindQuotes Kind = "quotes"
)

// Valid reports whether k is one of the known tick tables.
func (k Kind) Valid() bool {
	return k == KindTrades || k == KindQuotes
}

// A day summary row asserts that every tick for (kind, ticker, date) has
// been durably written. Presence is the whole signal; there is no payload.
// Rows are write-once: callers must finish the bulk insert before marking,
// and a crashed batch rolls back to zero rows, so the only unsafe window is
// a caller marking a day it never fully recorded.
