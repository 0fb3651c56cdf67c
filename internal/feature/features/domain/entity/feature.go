// Package entity defines the domain entities for derived per-ticker features.
package entity

import "time"

// Feature is a named derived series attached to a ticker, such as a moving
// average or a realized-volatility estimate. The values themselves live in
// FeatureValue rows.
type Feature struct {
	ID          uint    `gorm:"primaryKey"`
	TickerID    uint    `gorm:"uniqueIndex:idx_features_ticker_name;not null"`
	Name        string  `gorm:"size:50;uniqueIndex:idx_features_ticker_name;not null"`
	Description *string `gorm:"size:255"`
}

// TableName specifies the table name for the Feature entity.
func (Feature) TableName() string {
	return "features"
}

// FeatureValue is one observation of a feature series. The (feature, time)
// pair is the natural key; a point is written at most once.
type FeatureValue struct {
	FeatureID uint      `gorm:"primaryKey;autoIncrement:false"`
	Time      time.Time `gorm:"primaryKey"`
	Value     float64   `gorm:"not null"`
}

// TableName specifies the table name for the FeatureValue entity.
func (FeatureValue) TableName() string {
	return "feature_values"
}
