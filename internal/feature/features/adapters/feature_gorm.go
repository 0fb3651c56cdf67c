// Package adapters implements the repository interfaces on gorm.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tick_store/internal/feature/features/domain"
	"tick_store/internal/feature/features/domain/entity"
	"tick_store/internal/feature/features/usecase"
	tickerentity "tick_store/internal/feature/tickers/domain/entity"
)

// featureGorm implements the FeatureRepository interface on gorm.
type featureGorm struct {
	db *gorm.DB
}

var _ usecase.FeatureRepository = (*featureGorm)(nil)

// NewFeatureRepository creates a feature registry repository on the given connection.
func NewFeatureRepository(db *gorm.DB) *featureGorm {
	return &featureGorm{db: db}
}

// Register inserts a new feature definition. The unique (ticker_id, name)
// index rejects duplicates; the existing row is left untouched.
func (r *featureGorm) Register(ctx context.Context, feature *entity.Feature) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&tickerentity.Ticker{}).
		Where("id = ?", feature.TickerID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrUnknownTicker
	}

	if err := r.db.WithContext(ctx).Create(feature).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrFeatureExists
		}
		return err
	}
	return nil
}

// FindByName returns the feature registered as (ticker, name).
func (r *featureGorm) FindByName(ctx context.Context, tickerID uint, name string) (*entity.Feature, error) {
	var feature entity.Feature
	err := r.db.WithContext(ctx).
		Where("ticker_id = ? AND name = ?", tickerID, name).
		First(&feature).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFeatureNotFound
		}
		return nil, err
	}
	return &feature, nil
}

// FindByID returns the feature by id.
func (r *featureGorm) FindByID(ctx context.Context, id uint) (*entity.Feature, error) {
	var feature entity.Feature
	err := r.db.WithContext(ctx).First(&feature, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFeatureNotFound
		}
		return nil, err
	}
	return &feature, nil
}

// ListByTicker returns every feature registered for a ticker, ordered by name.
func (r *featureGorm) ListByTicker(ctx context.Context, tickerID uint) ([]entity.Feature, error) {
	var features []entity.Feature
	err := r.db.WithContext(ctx).
		Where("ticker_id = ?", tickerID).
		Order("name ASC").
		Find(&features).Error
	if err != nil {
		return nil, err
	}
	return features, nil
}
