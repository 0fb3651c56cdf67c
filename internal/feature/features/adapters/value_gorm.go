package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tick_store/internal/feature/features/domain"
	"tick_store/internal/feature/features/domain/entity"
	"tick_store/internal/feature/features/usecase"
)

// insertBatchSize caps how many rows go into a single INSERT statement.
const insertBatchSize = 1000

// valueGorm implements the FeatureValueRepository interface on gorm.
type valueGorm struct {
	db *gorm.DB
}

var _ usecase.FeatureValueRepository = (*valueGorm)(nil)

// NewFeatureValueRepository creates a feature value repository on the given connection.
func NewFeatureValueRepository(db *gorm.DB) *valueGorm {
	return &valueGorm{db: db}
}

// featureExists checks the registry once for a whole batch. The value table
// itself carries no foreign key, so this is the only referential check.
func featureExists(ctx context.Context, db *gorm.DB, featureID uint) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.Feature{}).
		Where("id = ?", featureID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertBatch appends value points inside one transaction. The composite
// primary key rejects any point whose (feature, time) is already stored, and
// the transaction then rolls the whole batch back, so stored values are never
// overwritten and a conflicting batch writes nothing.
func (r *valueGorm) InsertBatch(ctx context.Context, featureID uint, points []entity.FeatureValue) error {
	if len(points) == 0 {
		return nil
	}

	ok, err := featureExists(ctx, r.db, featureID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnknownFeature
	}

	rows := make([]entity.FeatureValue, 0, len(points))
	for _, p := range points {
		rows = append(rows, entity.FeatureValue{
			FeatureID: featureID,
			Time:      p.Time.UTC(),
			Value:     p.Value,
		})
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&rows, insertBatchSize).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrValueConflict
		}
		return err
	}
	return nil
}

// FindRange returns the stored points for a feature within [from, to],
// ordered by time.
func (r *valueGorm) FindRange(ctx context.Context, featureID uint, from, to time.Time) ([]entity.FeatureValue, error) {
	var rows []entity.FeatureValue
	err := r.db.WithContext(ctx).
		Where("feature_id = ? AND time >= ? AND time <= ?", featureID, from.UTC(), to.UTC()).
		Order("time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Time = rows[i].Time.UTC()
	}
	return rows, nil
}
