package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tick_store/internal/feature/features/domain"
	"tick_store/internal/feature/features/domain/entity"
	"tick_store/internal/feature/features/usecase"
	"tick_store/internal/shared/dates"
)

// featureSummaryGorm implements the FeatureSummaryRepository interface on gorm.
type featureSummaryGorm struct {
	db *gorm.DB
}

var _ usecase.FeatureSummaryRepository = (*featureSummaryGorm)(nil)

// NewFeatureSummaryRepository creates a feature day-summary repository on the
// given connection.
func NewFeatureSummaryRepository(db *gorm.DB) *featureSummaryGorm {
	return &featureSummaryGorm{db: db}
}

// Mark inserts the completeness marker for (feature, date). Re-marking fails
// with domain.ErrDayAlreadyComplete rather than being silently ignored.
func (r *featureSummaryGorm) Mark(ctx context.Context, featureID uint, date time.Time) error {
	ok, err := featureExists(ctx, r.db, featureID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnknownFeature
	}

	row := entity.FeatureDaySummary{FeatureID: featureID, Date: dates.Normalize(date)}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDayAlreadyComplete
		}
		return err
	}
	return nil
}

// IsComplete reports whether the completeness marker exists.
func (r *featureSummaryGorm) IsComplete(ctx context.Context, featureID uint, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.FeatureDaySummary{}).
		Where("feature_id = ? AND date = ?", featureID, dates.Normalize(date)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CompletedDates returns every date marked complete for a feature, ordered by
// date.
func (r *featureSummaryGorm) CompletedDates(ctx context.Context, featureID uint) ([]time.Time, error) {
	var stored []time.Time
	err := r.db.WithContext(ctx).
		Model(&entity.FeatureDaySummary{}).
		Where("feature_id = ?", featureID).
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
