package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tick_store/internal/feature/marketdata/domain"
	"tick_store/internal/feature/marketdata/domain/entity"
	"tick_store/internal/feature/marketdata/usecase"
	"tick_store/internal/shared/dates"
)

// quoteGorm implements the QuoteRepository interface on gorm.
type quoteGorm struct {
	db *gorm.DB
}

var _ usecase.QuoteRepository = (*quoteGorm)(nil)

// NewQuoteRepository creates a quote repository on the given connection.
func NewQuoteRepository(db *gorm.DB) *quoteGorm {
	return &quoteGorm{db: db}
}

// InsertBatch appends a day of quotes inside one transaction, with the same
// all-or-nothing contract as the trade repository.
func (r *quoteGorm) InsertBatch(ctx context.Context, tickerID uint, date time.Time, ticks []entity.QuoteTick) error {
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
	models := make([]QuoteModel, 0, len(ticks))
	for _, tick := range ticks {
		models = append(models, QuoteModel{
			TickerID:  tickerID,
			Date:      date,
			Timestamp: tick.Timestamp,
			AskPrice:  tick.AskPrice,
			AskVolume: tick.AskVolume,
			BidPrice:  tick.BidPrice,
			BidVolume: tick.BidVolume,
		})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&models, insertBatchSize).Error
	})
}

// FindRange returns all quotes for a ticker within [from, to], ordered by
// date then timestamp.
func (r *quoteGorm) FindRange(ctx context.Context, tickerID uint, from, to time.Time) ([]entity.Quote, error) {
	var rows []QuoteModel
	err := r.db.WithContext(ctx).
		Where("ticker_id = ? AND date >= ? AND date <= ?",
			tickerID, dates.Normalize(from), dates.Normalize(to)).
		Order("date ASC, timestamp ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.Quote, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Quote{
			ID:        m.ID,
			TickerID:  m.TickerID,
			Date:      dates.Normalize(m.Date),
			Timestamp: m.Timestamp,
			AskPrice:  m.AskPrice,
			AskVolume: m.AskVolume,
			BidPrice:  m.BidPrice,
			BidVolume: m.BidVolume,
		})
	}
	return out, nil
}

// FindByDate returns all quotes for a ticker on one date.
func (r *quoteGorm) FindByDate(ctx context.Context, tickerID uint, date time.Time) ([]entity.Quote, error) {
	return r.FindRange(ctx, tickerID, date, date)
}
