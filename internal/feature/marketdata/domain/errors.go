// Package domain defines domain-level errors for the marketdata feature.
package domain

import "errors"

var (
	// ErrUnknownTicker is returned when an insert references a ticker id
	// that does not exist in the registry. Checked once per batch rather
	// than per row, to keep bulk tick inserts fast.
	ErrUnknownTicker = errors.New("ticker does not exist")

	// ErrDayAlreadyComplete is returned when marking a (kind, ticker, date)
	// that already carries a completeness marker. Re-marking is never
	// silently ignored; a second writer must see that it lost the race.
	ErrDayAlreadyComplete = errors.New("day already marked complete")

	// ErrUnknownKind is returned for a kind other than trades or quotes.
	ErrUnknownKind = errors.New("unknown tick table kind")
)
