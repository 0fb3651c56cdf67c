package entity

import "time"

// FeatureDaySummary marks one day of a feature series as fully computed and
// stored. It is the only place referential integrity is tracked for feature
// values; the value rows themselves carry no foreign key to keep bulk inserts
// cheap.
type FeatureDaySummary struct {
	FeatureID uint      `gorm:"primaryKey;autoIncrement:false"`
	Date      time.Time `gorm:"primaryKey;type:date"`
}

// TableName specifies the table name for the FeatureDaySummary entity.
func (FeatureDaySummary) TableName() string {
	return "feature_values_summary"
}
