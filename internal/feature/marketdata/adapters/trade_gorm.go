package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tick_store/internal/feature/marketdata/domain"
	"tick_store/internal/feature/marketdata/domain/entity"
	"tick_store/internal/feature/marketdata/usecase"
	tickerentity "tick_store/internal/feature/tickers/domain/entity"
	"tick_store/internal/shared/dates"
)

// tradeGorm implements the TradeRepository interface on gorm.
type tradeGorm struct {
	db *gorm.DB
}

var _ usecase.TradeRepository = (*tradeGorm)(nil)

// NewTradeRepository creates a trade repository on the given connection.
func NewTradeRepository(db *gorm.DB) *tradeGorm {
	return &tradeGorm{db: db}
}

// tickerExists checks the registry once for a whole batch.
func tickerExists(ctx context.Context, db *gorm.DB, tickerID uint) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&tickerentity.Ticker{}).
		Where("id = ?", tickerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertBatch appends a day of trades inside one transaction. Either every
// tick lands or none do, so a failed batch never leaves a half-written day
// behind. Duplicate submission of the same window is the caller's problem;
// rows carry no natural key beyond the auto id.
func (r *tradeGorm) InsertBatch(ctx context.Context, tickerID uint, date time.Time, ticks []entity.TradeTick) error {
	if len(ticks) == 0 {
		return nil
	}

	ok, err := tickerExists(ctx, r.db, tickerID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnknownTicker
	}

	date = dates.Normalize(date)
	models := make([]TradeModel, 0, len(ticks))
	for _, tick := range ticks {
		models = append(models, TradeModel{
			TickerID:  tickerID,
			Date:      date,
			Timestamp: tick.Timestamp,
			Price:     tick.Price,
			Volume:    tick.Volume,
		})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&models, insertBatchSize).Error
	})
}

// FindRange returns all trades for a ticker within [from, to], ordered by
// date then timestamp.
func (r *tradeGorm) FindRange(ctx context.Context, tickerID uint, from, to time.Time) ([]entity.Trade, error) {
	var rows []TradeModel
	err := r.db.WithContext(ctx).
		Where("ticker_id = ? AND date >= ? AND date <= ?",
			tickerID, dates.Normalize(from), dates.Normalize(to)).
		Order("date ASC, timestamp ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.Trade, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Trade{
			ID:        m.ID,
			TickerID:  m.TickerID,
			Date:      dates.Normalize(m.Date),
			Timestamp: m.Timestamp,
			Price:     m.Price,
			Volume:    m.Volume,
		})
	}
	return out, nil
}

// FindByDate returns all trades for a ticker on one date.
func (r *tradeGorm) FindByDate(ctx context.Context, tickerID uint, date time.Time) ([]entity.Trade, error) {
	return r.FindRange(ctx, tickerID, date, date)
}
