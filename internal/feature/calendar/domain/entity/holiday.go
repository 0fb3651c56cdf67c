// Package entity defines the domain models for the calendar feature.
package entity

import "time"

// Trading-hours values stored in the Hours column.
const (
	// HoursClosed marks a day the exchange does not open at all.
	HoursClosed = "closed"
	// HoursHalf marks a shortened session (early close).
	HoursHalf = "half"
)

// Holiday is a calendar entry for one exchange on one date. Calendars are
// exchange-wide, not per ticker, so the key is (exchange, date). Rows are
// immutable once seeded; re-seeding replaces the whole calendar.
type Holiday struct {
	Exchange string    `gorm:"size:10;primaryKey"`
	Date     time.Time `gorm:"primaryKey;type:date"`
	Hours    string    `gorm:"size:10;not null"`
	Day      string    `gorm:"size:255;not null"`
}

// TableName maps the entity to the holidays table.
func (Holiday) TableName() string {
	return "holidays"
}
