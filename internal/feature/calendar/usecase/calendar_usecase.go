// Package usecase implements the business logic for the calendar feature.
package usecase

import (
	"context"
	"time"

	"tick_store/internal/feature/calendar/domain/entity"
	"tick_store/internal/shared/dates"
)

// HolidayRepository abstracts the persistence layer for the holiday calendar.
// Following Go convention, the interface is defined by the consumer (usecase).
type HolidayRepository interface {
	// ReplaceAll upserts calendar entries, overwriting existing
	// (exchange, date) rows.
	ReplaceAll(ctx context.Context, holidays []entity.Holiday) error

	// ListRange returns holidays for an exchange within [from, to],
	// ordered by date. Zero bounds are unbounded.
	ListRange(ctx context.Context, exchange string, from, to time.Time) ([]entity.Holiday, error)
}

// CalendarUsecase answers which dates an exchange traded on.
type CalendarUsecase struct {
	holidays HolidayRepository
}

// NewCalendarUsecase creates a new CalendarUsecase.
func NewCalendarUsecase(holidays HolidayRepository) *CalendarUsecase {
	return &CalendarUsecase{holidays: holidays}
}

// Seed stores calendar entries, replacing rows with the same key.
func (u *CalendarUsecase) Seed(ctx context.Context, holidays []entity.Holiday) error {
	return u.holidays.ReplaceAll(ctx, holidays)
}

// Holidays returns the holidays for an exchange within [from, to].
func (u *CalendarUsecase) Holidays(ctx context.Context, exchange string, from, to time.Time) ([]entity.Holiday, error) {
	return u.holidays.ListRange(ctx, exchange, from, to)
}

// OpenDates returns the dates within [from, to] on which the exchange was
// open for trading and for which a full day of data can exist. Weekends,
// closed holidays, and any date that is not strictly in the past (relative
// to now) are excluded; today's session may still be in progress, so its
// data can never be complete. Half days count as open.
func (u *CalendarUsecase) OpenDates(ctx context.Context, exchange string, from, to, now time.Time) ([]time.Time, error) {
	from = dates.Normalize(from)
	to = dates.Normalize(to)
	today := dates.Normalize(now)

	holidays, err := u.holidays.ListRange(ctx, exchange, from, to)
	if err != nil {
		return nil, err
	}
	closed := make(map[time.Time]struct{}, len(holidays))
	for _, h := range holidays {
		if h.Hours == entity.HoursClosed {
			closed[dates.Normalize(h.Date)] = struct{}{}
		}
	}

	open := []time.Time{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if dates.IsWeekend(d) {
			continue
		}
		if _, ok := closed[d]; ok {
			continue
		}
		if !d.Before(today) {
			continue
		}
		open = append(open, d)
	}
	return open, nil
}
