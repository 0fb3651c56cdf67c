package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tick_store/internal/feature/marketdata/domain"
	"tick_store/internal/feature/marketdata/domain/entity"
	"tick_store/internal/feature/marketdata/usecase"
	"tick_store/internal/shared/dates"
)

// summaryGorm implements the SummaryRepository interface on gorm.
type summaryGorm struct {
	db *gorm.DB
}

var _ usecase.SummaryRepository = (*summaryGorm)(nil)

// NewSummaryRepository creates a day-summary repository on the given connection.
func NewSummaryRepository(db *gorm.DB) *summaryGorm {
	return &summaryGorm{db: db}
}

// Mark inserts the completeness marker for (kind, ticker, date). The insert
// is rejected, not ignored, when the marker already exists, so a caller can
// tell "already done" apart from "just done".
func (r *summaryGorm) Mark(ctx context.Context, kind entity.Kind, tickerID uint, date time.Time) error {
	if !kind.Valid() {
		return domain.ErrUnknownKind
	}

	ok, err := tickerExists(ctx, r.db, tickerID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnknownTicker
	}

	row := DaySummaryModel{
		Kind:     string(kind),
		TickerID: tickerID,
		Date:     dates.Normalize(date),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDayAlreadyComplete
		}
		return err
	}
	return nil
}

// IsComplete reports whether the completeness marker exists.
func (r *summaryGorm) IsComplete(ctx context.Context, kind entity.Kind, tickerID uint, date time.Time) (bool, error) {
	if !kind.Valid() {
		return false, domain.ErrUnknownKind
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&DaySummaryModel{}).
		Where("table_name = ? AND ticker_id = ? AND date = ?",
			string(kind), tickerID, dates.Normalize(date)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CompletedDates returns every date marked complete for (kind, ticker),
// ordered by date. The collector subtracts these from the open dates to
// resume an interrupted backfill.
func (r *summaryGorm) CompletedDates(ctx context.Context, kind entity.Kind, tickerID uint) ([]time.Time, error) {
	if !kind.Valid() {
		return nil, domain.ErrUnknownKind
	}

	var stored []time.Time
	err := r.db.WithContext(ctx).
		Model(&DaySummaryModel{}).
		Where("table_name = ? AND ticker_id = ?", string(kind), tickerID).
		Order("date ASC").
		Pluck("date", &stored).Error
	if err != nil {
		return nil, err
	}

	out := make([]time.Time, 0, len(stored))
	for _, d := range stored {
		out = append(out, dates.Normalize(d))
	}
	return out, nil
}
