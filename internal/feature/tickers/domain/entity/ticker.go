// Package entity defines the domain models for the tickers feature.
package entity

// Ticker represents a tradable symbol in the registry. It carries the
// descriptive metadata every other table references by id. Rows are created
// once at registration time and are immutable afterwards.
type Ticker struct {
	ID       uint   `gorm:"primaryKey"`
	Symbol   string `gorm:"size:10;not null;uniqueIndex"`
	Name     string `gorm:"size:255;not null"`
	Sector   string `gorm:"size:100;not null"`
	Exchange string `gorm:"size:10;not null;index"`
}

// TableName maps the entity to the tickers table.
func (Ticker) TableName() string {
	return "tickers"
}
