// Package usecase implements the business logic for the features feature.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tick_store/internal/feature/features/domain/entity"
)

// maxNameLength bounds the feature name column.
const maxNameLength = 50

// FeatureRepository abstracts the persistence layer for the feature registry.
type FeatureRepository interface {
	// Register inserts a new feature. Returns domain.ErrFeatureExists when
	// the (ticker, name) pair is taken and domain.ErrUnknownTicker when the
	// ticker id is not registered.
	Register(ctx context.Context, feature *entity.Feature) error

	// FindByName returns the feature for (ticker, name) or domain.ErrFeatureNotFound.
	FindByName(ctx context.Context, tickerID uint, name string) (*entity.Feature, error)

	// FindByID returns the feature by id or domain.ErrFeatureNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Feature, error)

	// ListByTicker returns every feature registered for a ticker.
	ListByTicker(ctx context.Context, tickerID uint) ([]entity.Feature, error)
}

// FeatureValueRepository abstracts the persistence layer for feature values.
type FeatureValueRepository interface {
	// InsertBatch appends value points all-or-nothing. Returns
	// domain.ErrUnknownFeature when the feature id is not registered and
	// domain.ErrValueConflict when any (feature, time) point already exists;
	// stored values are never overwritten.
	InsertBatch(ctx context.Context, featureID uint, points []entity.FeatureValue) error

	// FindRange returns the stored points for a feature within [from, to],
	// ordered by time.
	FindRange(ctx context.Context, featureID uint, from, to time.Time) ([]entity.FeatureValue, error)
}

// FeatureSummaryRepository abstracts the per-day completeness bookkeeping for
// feature series.
type FeatureSummaryRepository interface {
	// Mark records (feature, date) as fully computed. Returns
	// domain.ErrDayAlreadyComplete when the marker already exists.
	Mark(ctx context.Context, featureID uint, date time.Time) error

	// IsComplete reports whether the marker exists.
	IsComplete(ctx context.Context, featureID uint, date time.Time) (bool, error)

	// CompletedDates lists every marked date for a feature.
	CompletedDates(ctx context.Context, featureID uint) ([]time.Time, error)
}

// FeatureUsecase exposes the feature registry and value store.
type FeatureUsecase struct {
	features FeatureRepository
	values   FeatureValueRepository
	summary  FeatureSummaryRepository
}

// NewFeatureUsecase creates a new FeatureUsecase.
func NewFeatureUsecase(features FeatureRepository, values FeatureValueRepository, summary FeatureSummaryRepository) *FeatureUsecase {
	return &FeatureUsecase{features: features, values: values, summary: summary}
}

// Register validates and stores a new feature definition for a ticker.
func (u *FeatureUsecase) Register(ctx context.Context, tickerID uint, name string, description *string) (*entity.Feature, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("name %q exceeds %d characters", name, maxNameLength)
	}

	feature := &entity.Feature{TickerID: tickerID, Name: name, Description: description}
	if err := u.features.Register(ctx, feature); err != nil {
		return nil, err
	}
	return feature, nil
}

// Lookup returns the feature registered as (ticker, name).
func (u *FeatureUsecase) Lookup(ctx context.Context, tickerID uint, name string) (*entity.Feature, error) {
	return u.features.FindByName(ctx, tickerID, strings.TrimSpace(name))
}

// LookupByID returns the feature by its id.
func (u *FeatureUsecase) LookupByID(ctx context.Context, id uint) (*entity.Feature, error) {
	return u.features.FindByID(ctx, id)
}

// ListByTicker returns every feature registered for a ticker.
func (u *FeatureUsecase) ListByTicker(ctx context.Context, tickerID uint) ([]entity.Feature, error) {
	return u.features.ListByTicker(ctx, tickerID)
}

// RecordValues bulk-appends points of a feature series. The batch is
// all-or-nothing and never overwrites an existing (feature, time) point.
func (u *FeatureUsecase) RecordValues(ctx context.Context, featureID uint, points []entity.FeatureValue) error {
	return u.values.InsertBatch(ctx, featureID, points)
}

// ValuesInRange returns the stored points for a feature within [from, to].
func (u *FeatureUsecase) ValuesInRange(ctx context.Context, featureID uint, from, to time.Time) ([]entity.FeatureValue, error) {
	return u.values.FindRange(ctx, featureID, from, to)
}

// MarkDayComplete records that every point of the feature series for one day
// has been written. Marking twice fails with domain.ErrDayAlreadyComplete.
func (u *FeatureUsecase) MarkDayComplete(ctx context.Context, featureID uint, date time.Time) error {
	return u.summary.Mark(ctx, featureID, date)
}

// IsDayComplete reports whether (feature, date) is fully stored.
func (u *FeatureUsecase) IsDayComplete(ctx context.Context, featureID uint, date time.Time) (bool, error) {
	return u.summary.IsComplete(ctx, featureID, date)
}

// CompletedDates lists every fully stored date for a feature.
func (u *FeatureUsecase) CompletedDates(ctx context.Context, featureID uint) ([]time.Time, error) {
	return u.summary.CompletedDates(ctx, featureID)
}
