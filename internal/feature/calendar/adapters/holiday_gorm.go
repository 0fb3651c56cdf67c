// Package adapters provides the repository implementations for the calendar feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tick_store/internal/feature/calendar/domain/entity"
	"tick_store/internal/feature/calendar/usecase"
	"tick_store/internal/shared/dates"
)

// holidayGorm implements the HolidayRepository interface on gorm.
type holidayGorm struct {
	db *gorm.DB
}

var _ usecase.HolidayRepository = (*holidayGorm)(nil)

// NewHolidayRepository creates a holiday repository on the given connection.
func NewHolidayRepository(db *gorm.DB) *holidayGorm {
	return &holidayGorm{db: db}
}

// ReplaceAll upserts the given calendar entries, overwriting rows that share
// an (exchange, date) key. Seeding the calendar twice must not fail.
func (r *holidayGorm) ReplaceAll(ctx context.Context, holidays []entity.Holiday) error {
	if len(holidays) == 0 {
		return nil
	}
	for i := range holidays {
		holidays[i].Date = dates.Normalize(holidays[i].Date)
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "exchange"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"hours", "day"}),
	}).Create(&holidays).Error
}

// ListRange returns the holidays for one exchange within [from, to],
// ordered by date. Zero bounds are unbounded.
func (r *holidayGorm) ListRange(ctx context.Context, exchange string, from, to time.Time) ([]entity.Holiday, error) {
	q := r.db.WithContext(ctx).
		Where("exchange = ?", exchange).
		Order("date ASC")
	if !from.IsZero() {
		q = q.Where("date >= ?", dates.Normalize(from))
	}
	if !to.IsZero() {
		q = q.Where("date <= ?", dates.Normalize(to))
	}

	var holidays []entity.Holiday
	if err := q.Find(&holidays).Error; err != nil {
		return nil, err
	}
	return holidays, nil
}
