// Package adapters provides the repository implementations for the marketdata feature.
package adapters

import "time"

// insertBatchSize bounds the row count of a single INSERT statement when
// bulk-loading a day of ticks. The surrounding transaction keeps the whole
// day all-or-nothing regardless of how many statements it takes.
const insertBatchSize = 1000

// TradeModel is the persistence model for the trades table. Ticks are
// append-only; the composite index serves the (ticker, date, timestamp)
// range scans the analysis side issues. Ticker existence is validated once
// per batch in the repository instead of with a per-row foreign key, which
// would slow high-volume tick loads.
type TradeModel struct {
	ID        uint      `gorm:"primaryKey"`
	TickerID  uint      `gorm:"not null;index:idx_trades_ticker_date_ts,priority:1"`
	Date      time.Time `gorm:"type:date;not null;index:idx_trades_ticker_date_ts,priority:2"`
	Timestamp int64     `gorm:"not null;index:idx_trades_ticker_date_ts,priority:3"`
	Price     float64   `gorm:"not null"`
	Volume    int64     `gorm:"not null"`
}

// TableName maps the model to the trades table.
func (TradeModel) TableName() string {
	return "trades"
}

// QuoteModel is the persistence model for the quotes table.
type QuoteModel struct {
	ID        uint      `gorm:"primaryKey"`
	TickerID  uint      `gorm:"not null;index:idx_quotes_ticker_date_ts,priority:1"`
	Date      time.Time `gorm:"type:date;not null;index:idx_quotes_ticker_date_ts,priority:2"`
	Timestamp int64     `gorm:"not null;index:idx_quotes_ticker_date_ts,priority:3"`
	AskPrice  float64   `gorm:"not null"`
	AskVolume int64     `gorm:"not null"`
	BidPrice  float64   `gorm:"not null"`
	BidVolume int64     `gorm:"not null"`
}

// TableName maps the model to the quotes table.
func (QuoteModel) TableName() string {
	return "quotes"
}

// DaySummaryModel is the persistence model for the summary table. The
// composite primary key doubles as the last-resort guard against two
// collectors marking the same day.
type DaySummaryModel struct {
	Kind     string    `gorm:"column:table_name;size:10;primaryKey"`
	TickerID uint      `gorm:"primaryKey"`
	Date     time.Time `gorm:"type:date;primaryKey"`
}

// TableName maps the model to the summary table.
func (DaySummaryModel) TableName() string {
	return "summary"
}
