// Package adapters provides the repository implementations for the tickers feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tick_store/internal/feature/tickers/domain"
	"tick_store/internal/feature/tickers/domain/entity"
	"tick_store/internal/feature/tickers/usecase"
)

// tickerGorm implements the TickerRepository interface on gorm.
type tickerGorm struct {
	db *gorm.DB
}

var _ usecase.TickerRepository = (*tickerGorm)(nil)

// NewTickerRepository creates a ticker repository on the given connection.
func NewTickerRepository(db *gorm.DB) *tickerGorm {
	return &tickerGorm{db: db}
}

// Register inserts a new ticker row. A unique-key violation on the symbol
// surfaces as domain.ErrTickerExists; the existing row is never altered.
func (r *tickerGorm) Register(ctx context.Context, ticker *entity.Ticker) error {
	if err := r.db.WithContext(ctx).Create(ticker).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrTickerExists
		}
		return err
	}
	return nil
}

// FindBySymbol returns the ticker registered under symbol.
func (r *tickerGorm) FindBySymbol(ctx context.Context, symbol string) (*entity.Ticker, error) {
	var ticker entity.Ticker
	err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&ticker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTickerNotFound
		}
		return nil, err
	}
	return &ticker, nil
}

// FindByID returns the ticker with the given id.
func (r *tickerGorm) FindByID(ctx context.Context, id uint) (*entity.Ticker, error) {
	var ticker entity.Ticker
	err := r.db.WithContext(ctx).First(&ticker, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTickerNotFound
		}
		return nil, err
	}
	return &ticker, nil
}

// List returns all tickers ordered by symbol.
func (r *tickerGorm) List(ctx context.Context) ([]entity.Ticker, error) {
	var tickers []entity.Ticker
	if err := r.db.WithContext(ctx).Order("symbol ASC").Find(&tickers).Error; err != nil {
		return nil, err
	}
	return tickers, nil
}
