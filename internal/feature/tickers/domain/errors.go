// Package domain defines domain-level errors for the tickers feature.
package domain

import "errors"

var (
	// ErrTickerExists is returned when registering a symbol that is already
	// in the registry. The existing row is left untouched.
	ErrTickerExists = errors.New("ticker symbol already registered")

	// ErrTickerNotFound is returned when no ticker matches the given
	// symbol or id.
	ErrTickerNotFound = errors.New("ticker not found")
)
