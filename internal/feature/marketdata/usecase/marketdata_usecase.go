// Package usecase implements the business logic for the marketdata feature.
package usecase

import (
	"context"
	"time"

	"tick_store/internal/feature/marketdata/domain"
	"tick_store/internal/feature/marketdata/domain/entity"
)

// TradeRepository abstracts the persistence layer for trade ticks.
// Following Go convention, interfaces are defined by the consumer (usecase).
type TradeRepository interface {
	// InsertBatch appends a day of trades all-or-nothing. Returns
	// domain.ErrUnknownTicker when the ticker id is not registered.
	InsertBatch(ctx context.Context, tickerID uint, date time.Time, ticks []entity.TradeTick) error

	// FindByDate returns all trades for (ticker, date) ordered by timestamp.
	FindByDate(ctx context.Context, tickerID uint, date time.Time) ([]entity.Trade, error)

	// FindRange returns all trades for a ticker within [from, to].
	FindRange(ctx context.Context, tickerID uint, from, to time.Time) ([]entity.Trade, error)
}

// QuoteRepository abstracts the persistence layer for quote ticks.
type QuoteRepository interface {
	InsertBatch(ctx context.Context, tickerID uint, date time.Time, ticks []entity.QuoteTick) error
	FindByDate(ctx context.Context, tickerID uint, date time.Time) ([]entity.Quote, error)
	FindRange(ctx context.Context, tickerID uint, from, to time.Time) ([]entity.Quote, error)
}

// SummaryRepository abstracts the completeness bookkeeping. The markers turn
// "is this day done?" into an O(1) existence check instead of an ambiguous
// row-count reconciliation. A partial day's rows look identical to a
// complete day's until compared against expected volume.
type SummaryRepository interface {
	// Mark records (kind, ticker, date) as fully ingested. Returns
	// domain.ErrDayAlreadyComplete when the marker already exists.
	Mark(ctx context.Context, kind entity.Kind, tickerID uint, date time.Time) error

	// IsComplete reports whether the marker exists.
	IsComplete(ctx context.Context, kind entity.Kind, tickerID uint, date time.Time) (bool, error)

	// CompletedDates lists every marked date for (kind, ticker).
	CompletedDates(ctx context.Context, kind entity.Kind, tickerID uint) ([]time.Time, error)
}

// MarketDataUsecase exposes the tick-store operations to collectors and the
// HTTP API.
type MarketDataUsecase struct {
	trades  TradeRepository
	quotes  QuoteRepository
	summary SummaryRepository
}

// NewMarketDataUsecase creates a new MarketDataUsecase.
func NewMarketDataUsecase(trades TradeRepository, quotes QuoteRepository, summary SummaryRepository) *MarketDataUsecase {
	return &MarketDataUsecase{trades: trades, quotes: quotes, summary: summary}
}

// RecordTrades bulk-appends one day of trades for a ticker. The batch is
// all-or-nothing; the caller must only mark the day complete after this
// returns nil.
func (u *MarketDataUsecase) RecordTrades(ctx context.Context, tickerID uint, date time.Time, ticks []entity.TradeTick) error {
	return u.trades.InsertBatch(ctx, tickerID, date, ticks)
}

// RecordQuotes bulk-appends one day of quotes for a ticker.
func (u *MarketDataUsecase) RecordQuotes(ctx context.Context, tickerID uint, date time.Time, ticks []entity.QuoteTick) error {
	return u.quotes.InsertBatch(ctx, tickerID, date, ticks)
}

// TradesByDate returns the stored trades for one (ticker, date).
func (u *MarketDataUsecase) TradesByDate(ctx context.Context, tickerID uint, date time.Time) ([]entity.Trade, error) {
	return u.trades.FindByDate(ctx, tickerID, date)
}

// QuotesByDate returns the stored quotes for one (ticker, date).
func (u *MarketDataUsecase) QuotesByDate(ctx context.Context, tickerID uint, date time.Time) ([]entity.Quote, error) {
	return u.quotes.FindByDate(ctx, tickerID, date)
}

// TradesInRange returns the stored trades for a ticker within [from, to].
func (u *MarketDataUsecase) TradesInRange(ctx context.Context, tickerID uint, from, to time.Time) ([]entity.Trade, error) {
	return u.trades.FindRange(ctx, tickerID, from, to)
}

// QuotesInRange returns the stored quotes for a ticker within [from, to].
func (u *MarketDataUsecase) QuotesInRange(ctx context.Context, tickerID uint, from, to time.Time) ([]entity.Quote, error) {
	return u.quotes.FindRange(ctx, tickerID, from, to)
}

// MarkDayComplete records that every tick for (kind, ticker, date) has been
// written. Marking twice fails with domain.ErrDayAlreadyComplete.
func (u *MarketDataUsecase) MarkDayComplete(ctx context.Context, kind entity.Kind, tickerID uint, date time.Time) error {
	if !kind.Valid() {
		return domain.ErrUnknownKind
	}
	return u.summary.Mark(ctx, kind, tickerID, date)
}

// IsDayComplete reports whether (kind, ticker, date) is fully ingested.
func (u *MarketDataUsecase) IsDayComplete(ctx context.Context, kind entity.Kind, tickerID uint, date time.Time) (bool, error) {
	if !kind.Valid() {
		return false, domain.ErrUnknownKind
	}
	return u.summary.IsComplete(ctx, kind, tickerID, date)
}

// CompletedDates lists every fully ingested date for (kind, ticker).
func (u *MarketDataUsecase) CompletedDates(ctx context.Context, kind entity.Kind, tickerID uint) ([]time.Time, error) {
	if !kind.Valid() {
		return nil, domain.ErrUnknownKind
	}
	return u.summary.CompletedDates(ctx, kind, tickerID)
}
