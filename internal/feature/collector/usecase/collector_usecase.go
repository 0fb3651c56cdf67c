// Package usecase implements the backfill orchestration for the collector.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	mdomain "tick_store/internal/feature/marketdata/domain"
	mdentity "tick_store/internal/feature/marketdata/domain/entity"
	tickerdomain "tick_store/internal/feature/tickers/domain"
	tickerentity "tick_store/internal/feature/tickers/domain/entity"
	"tick_store/internal/shared/dates"
	"tick_store/internal/shared/ratelimiter"
)

// CompanyInfo carries the ticker details fetched from the market data vendor.
type CompanyInfo struct {
	Symbol   string
	Name     string
	Sector   string
	Exchange string
}

// MarketAPI abstracts the upstream tick vendor.
type MarketAPI interface {
	// CompanyDetails fetches registration details for a symbol.
	CompanyDetails(ctx context.Context, symbol string) (*CompanyInfo, error)

	// TradesForDay fetches every trade tick for (symbol, date), fully paginated.
	TradesForDay(ctx context.Context, symbol string, date time.Time) ([]mdentity.TradeTick, error)

	// QuotesForDay fetches every NBBO quote tick for (symbol, date), fully paginated.
	QuotesForDay(ctx context.Context, symbol string, date time.Time) ([]mdentity.QuoteTick, error)
}

// TickerRegistry is the slice of the ticker usecase the collector needs.
type TickerRegistry interface {
	Lookup(ctx context.Context, symbol string) (*tickerentity.Ticker, error)
	Register(ctx context.Context, symbol, name, sector, exchange string) (*tickerentity.Ticker, error)
}

// Calendar is the slice of the calendar usecase the collector needs.
type Calendar interface {
	OpenDates(ctx context.Context, exchange string, from, to, now time.Time) ([]time.Time, error)
}

// TickStore is the slice of the marketdata usecase the collector needs.
type TickStore interface {
	RecordTrades(ctx context.Context, tickerID uint, date time.Time, ticks []mdentity.TradeTick) error
	RecordQuotes(ctx context.Context, tickerID uint, date time.Time, ticks []mdentity.QuoteTick) error
	MarkDayComplete(ctx context.Context, kind mdentity.Kind, tickerID uint, date time.Time) error
	CompletedDates(ctx context.Context, kind mdentity.Kind, tickerID uint) ([]time.Time, error)
}

// CollectorUsecase backfills historic ticks day by day. Each day is fetched,
// recorded and marked complete independently, so a crash or a bad day leaves
// every other day's state intact and the next run resumes from the markers.
type CollectorUsecase struct {
	api      MarketAPI
	tickers  TickerRegistry
	calendar Calendar
	store    TickStore
	limiter  ratelimiter.RateLimiterInterface
	now      func() time.Time
}

// NewCollectorUsecase creates a new CollectorUsecase.
func NewCollectorUsecase(api MarketAPI, tickers TickerRegistry, calendar Calendar, store TickStore, limiter ratelimiter.RateLimiterInterface) *CollectorUsecase {
	return &CollectorUsecase{
		api:      api,
		tickers:  tickers,
		calendar: calendar,
		store:    store,
		limiter:  limiter,
		now:      time.Now,
	}
}

// EnsureTicker returns the registered ticker for a symbol, fetching its
// details from the vendor and registering it when it is not known locally.
func (u *CollectorUsecase) EnsureTicker(ctx context.Context, symbol string) (*tickerentity.Ticker, error) {
	ticker, err := u.tickers.Lookup(ctx, symbol)
	if err == nil {
		return ticker, nil
	}
	if !errors.Is(err, tickerdomain.ErrTickerNotFound) {
		return nil, err
	}

	u.limiter.WaitIfNeeded()
	info, err := u.api.CompanyDetails(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch company details for %s: %w", symbol, err)
	}

	ticker, err = u.tickers.Register(ctx, info.Symbol, info.Name, info.Sector, info.Exchange)
	if errors.Is(err, tickerdomain.ErrTickerExists) {
		// Lost a race with a concurrent registration; the row is there now.
		return u.tickers.Lookup(ctx, symbol)
	}
	if err != nil {
		return nil, err
	}
	return ticker, nil
}

// Collect backfills one kind of tick for a symbol over [from, to]. Days that
// already carry a completeness marker are skipped; days whose fetch or write
// fails are logged and left unmarked so the next run retries them.
func (u *CollectorUsecase) Collect(ctx context.Context, symbol string, kind mdentity.Kind, from, to time.Time) error {
	if !kind.Valid() {
		return mdomain.ErrUnknownKind
	}

	ticker, err := u.EnsureTicker(ctx, symbol)
	if err != nil {
		return err
	}

	open, err := u.calendar.OpenDates(ctx, ticker.Exchange, from, to, u.now())
	if err != nil {
		return err
	}

	stored, err := u.store.CompletedDates(ctx, kind, ticker.ID)
	if err != nil {
		return err
	}
	done := make(map[time.Time]struct{}, len(stored))
	for _, d := range stored {
		done[dates.Normalize(d)] = struct{}{}
	}

	for _, date := range open {
		if _, ok := done[dates.Normalize(date)]; ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := u.collectDay(ctx, ticker, kind, date); err != nil {
			slog.Error("failed to collect day",
				"symbol", ticker.Symbol,
				"kind", string(kind),
				"date", dates.Format(date),
				"error", err)
			continue
		}
		slog.Info("collected day",
			"symbol", ticker.Symbol,
			"kind", string(kind),
			"date", dates.Format(date))
	}
	return nil
}

// collectDay fetches, records and marks one (kind, date). The marker is only
// written after the batch insert succeeds.
func (u *CollectorUsecase) collectDay(ctx context.Context, ticker *tickerentity.Ticker, kind mdentity.Kind, date time.Time) error {
	u.limiter.WaitIfNeeded()

	switch kind {
	case mdentity.KindTrades:
		ticks, err := u.api.TradesForDay(ctx, ticker.Symbol, date)
		if err != nil {
			return fmt.Errorf("fetch trades: %w", err)
		}
		if err := u.store.RecordTrades(ctx, ticker.ID, date, ticks); err != nil {
			return fmt.Errorf("record trades: %w", err)
		}
	case mdentity.KindQuotes:
		ticks, err := u.api.QuotesForDay(ctx, ticker.Symbol, date)
		if err != nil {
			return fmt.Errorf("fetch quotes: %w", err)
		}
		if err := u.store.RecordQuotes(ctx, ticker.ID, date, ticks); err != nil {
			return fmt.Errorf("record quotes: %w", err)
		}
	default:
		return mdomain.ErrUnknownKind
	}

	if err := u.store.MarkDayComplete(ctx, kind, ticker.ID, date); err != nil {
		return fmt.Errorf("mark day complete: %w", err)
	}
	return nil
}
