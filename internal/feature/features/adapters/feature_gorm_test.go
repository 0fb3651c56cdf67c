package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tick_store/internal/feature/features/domain"
	"tick_store/internal/feature/features/domain/entity"
	tickerentity "tick_store/internal/feature/tickers/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database with the ticker registry
// and the feature tables.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(
		&tickerentity.Ticker{},
		&entity.Feature{},
		&entity.FeatureValue{},
		&entity.FeatureDaySummary{},
	)
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func seedTicker(t *testing.T, db *gorm.DB) *tickerentity.Ticker {
	t.Helper()

	ticker := &tickerentity.Ticker{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology", Exchange: "NASDAQ"}
	require.NoError(t, db.Create(ticker).Error, "failed to seed ticker")
	return ticker
}

func seedFeature(t *testing.T, db *gorm.DB, tickerID uint, name string) *entity.Feature {
	t.Helper()

	feature := &entity.Feature{TickerID: tickerID, Name: name}
	require.NoError(t, db.Create(feature).Error, "failed to seed feature")
	return feature
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestFeatureGorm_Register(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewFeatureRepository(db)
	ticker := seedTicker(t, db)
	ctx := context.Background()

	desc := "20-day simple moving average"
	feature := &entity.Feature{TickerID: ticker.ID, Name: "sma_20", Description: &desc}
	require.NoError(t, repo.Register(ctx, feature))
	assert.NotZero(t, feature.ID)

	// Same name on another ticker is fine; same (ticker, name) is not.
	other := &tickerentity.Ticker{Symbol: "MSFT", Name: "Microsoft", Exchange: "NASDAQ"}
	require.NoError(t, db.Create(other).Error)
	assert.NoError(t, repo.Register(ctx, &entity.Feature{TickerID: other.ID, Name: "sma_20"}))

	err := repo.Register(ctx, &entity.Feature{TickerID: ticker.ID, Name: "sma_20"})
	assert.ErrorIs(t, err, domain.ErrFeatureExists)
}

func TestFeatureGorm_Register_UnknownTicker(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewFeatureRepository(db)

	err := repo.Register(context.Background(), &entity.Feature{TickerID: 99, Name: "sma_20"})
	assert.ErrorIs(t, err, domain.ErrUnknownTicker)
}

func TestFeatureGorm_FindByName(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewFeatureRepository(db)
	ticker := seedTicker(t, db)
	seeded := seedFeature(t, db, ticker.ID, "rv_30")

	found, err := repo.FindByName(context.Background(), ticker.ID, "rv_30")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)

	_, err = repo.FindByName(context.Background(), ticker.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrFeatureNotFound)
}

func TestFeatureGorm_ListByTicker(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewFeatureRepository(db)
	ticker := seedTicker(t, db)
	seedFeature(t, db, ticker.ID, "sma_20")
	seedFeature(t, db, ticker.ID, "rv_30")

	features, err := repo.ListByTicker(context.Background(), ticker.ID)
	require.NoError(t, err)
	require.Len(t, features, 2)
	assert.Equal(t, "rv_30", features[0].Name)
	assert.Equal(t, "sma_20", features[1].Name)
}

func TestValueGorm_InsertBatch_RoundTrip(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewFeatureValueRepository(db)
	ticker := seedTicker(t, db)
	feature := seedFeature(t, db, ticker.ID, "sma_20")
	ctx := context.Background()

	points := []entity.FeatureValue{
		{Time: at(2024, 1, 2, 14, 30), Value: 185.12},
		{Time: at(2024, 1, 2, 14, 31), Value: 185.15},
	}
	require.NoError(t, repo.InsertBatch(ctx, feature.ID, points))

	stored, err := repo.FindRange(ctx, feature.ID, at(2024, 1, 2, 0, 0), at(2024, 1, 3, 0, 0))
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, 185.12, stored[0].Value)
	assert.True(t, stored[0].Time.Equal(points[0].Time))
}

func TestValueGorm_InsertBatch_ConflictKeepsStoredValue(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewFeatureValueRepository(db)
	ticker := seedTicker(t, db)
	feature := seedFeature(t, db, ticker.ID, "sma_20")
	ctx := context.Background()

	ts := at(2024, 1, 2, 14, 30)
	require.NoError(t, repo.InsertBatch(ctx, feature.ID, []entity.FeatureValue{{Time: ts, Value: 185.12}}))

	// A batch that collides on (feature, time) is rejected as a whole and
	// the stored value survives untouched.
	err := repo.InsertBatch(ctx, feature.ID, []entity.FeatureValue{
		{Time: at(2024, 1, 2, 14, 29), Value: 185.10},
		{Time: ts, Value: 999.99},
	})
	assert.ErrorIs(t, err, domain.ErrValueConflict)

	stored, err := repo.FindRange(ctx, feature.ID, at(2024, 1, 2, 0, 0), at(2024, 1, 3, 0, 0))
	require.NoError(t, err)
	require.Len(t, stored, 1, "conflicting batch must write nothing")
	assert.Equal(t, 185.12, stored[0].Value, "stored value must not be overwritten")
}

func TestValueGorm_InsertBatch_UnknownFeature(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewFeatureValueRepository(db)

	err := repo.InsertBatch(context.Background(), 99, []entity.FeatureValue{{Time: at(2024, 1, 2, 14, 30), Value: 1}})
	assert.ErrorIs(t, err, domain.ErrUnknownFeature)
}

func TestValueGorm_InsertBatch_EmptyIsNoOp(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewFeatureValueRepository(db)
	ticker := seedTicker(t, db)
	feature := seedFeature(t, db, ticker.ID, "sma_20")

	assert.NoError(t, repo.InsertBatch(context.Background(), feature.ID, nil))
}

func TestFeatureSummaryGorm_CompletenessProtocol(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	summary := NewFeatureSummaryRepository(db)
	ticker := seedTicker(t, db)
	feature := seedFeature(t, db, ticker.ID, "sma_20")
	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	complete, err := summary.IsComplete(ctx, feature.ID, date)
	require.NoError(t, err)
	assert.False(t, complete)

	require.NoError(t, summary.Mark(ctx, feature.ID, date))

	complete, err = summary.IsComplete(ctx, feature.ID, date)
	require.NoError(t, err)
	assert.True(t, complete)

	err = summary.Mark(ctx, feature.ID, date)
	assert.ErrorIs(t, err, domain.ErrDayAlreadyComplete)

	err = summary.Mark(ctx, feature.ID+1, date)
	assert.ErrorIs(t, err, domain.ErrUnknownFeature)
}

func TestFeatureSummaryGorm_CompletedDates(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	summary := NewFeatureSummaryRepository(db)
	ticker := seedTicker(t, db)
	feature := seedFeature(t, db, ticker.ID, "sma_20")
	ctx := context.Background()

	d1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	require.NoError(t, summary.Mark(ctx, feature.ID, d2))
	require.NoError(t, summary.Mark(ctx, feature.ID, d1))

	stored, err := summary.CompletedDates(ctx, feature.ID)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{d1, d2}, stored)
}
