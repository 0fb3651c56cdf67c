// Package db opens the PostgreSQL connection and runs schema migrations.
package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	featureentity "tick_store/internal/feature/features/domain/entity"
	mdadapters "tick_store/internal/feature/marketdata/adapters"
	calendarentity "tick_store/internal/feature/calendar/domain/entity"
	tickerentity "tick_store/internal/feature/tickers/domain/entity"
	"tick_store/internal/platform/config"
)

// connectTimeout bounds how long startup waits for the database.
const connectTimeout = 60 * time.Second

// Opener abstracts gorm.Open so the retry loop can be tested without a
// database.
type Opener func(dsn string) (*gorm.DB, error)

// postgresOpener opens a PostgreSQL connection with error translation
// enabled, so unique violations surface as gorm.ErrDuplicatedKey.
func postgresOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// ConnectWithRetry keeps trying to open the database until it succeeds or
// the timeout elapses. The store usually starts together with the database
// container, which needs a moment to accept connections.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after %s: %w", timeout, err)
		}
		log.Printf("database connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// Open connects to PostgreSQL using the given configuration.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	return ConnectWithRetry(cfg.DSN(), connectTimeout, postgresOpener)
}

// Migrate creates or updates every table of the store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&tickerentity.Ticker{},
		&calendarentity.Holiday{},
		&mdadapters.TradeModel{},
		&mdadapters.QuoteModel{},
		&mdadapters.DaySummaryModel{},
		&featureentity.Feature{},
		&featureentity.FeatureValue{},
		&featureentity.FeatureDaySummary{},
	)
}
