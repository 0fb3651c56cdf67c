// Package usecase implements the business logic for the tickers feature.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"tick_store/internal/feature/tickers/domain/entity"
)

const maxSymbolLength = 10

// TickerRepository abstracts the persistence layer for tickers.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type TickerRepository interface {
	// Register persists a new ticker. It returns
	// domain.ErrTickerExists when the symbol is already registered.
	Register(ctx context.Context, ticker *entity.Ticker) error

	// FindBySymbol returns the ticker with the given symbol, or
	// domain.ErrTickerNotFound.
	FindBySymbol(ctx context.Context, symbol string) (*entity.Ticker, error)

	// FindByID returns the ticker with the given id, or
	// domain.ErrTickerNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Ticker, error)

	// List returns all registered tickers ordered by symbol.
	List(ctx context.Context) ([]entity.Ticker, error)
}

// TickerUsecase exposes registry operations over the repository.
type TickerUsecase struct {
	tickers TickerRepository
}

// NewTickerUsecase creates a new TickerUsecase.
func NewTickerUsecase(tickers TickerRepository) *TickerUsecase {
	return &TickerUsecase{tickers: tickers}
}

// Register validates and inserts a new ticker, returning the stored row.
// Registration of an existing symbol fails with domain.ErrTickerExists;
// callers that want lookup-or-register semantics must do the lookup
// explicitly (see the collector's EnsureTicker).
func (u *TickerUsecase) Register(ctx context.Context, symbol, name, sector, exchange string) (*entity.Ticker, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if len(symbol) > maxSymbolLength {
		return nil, fmt.Errorf("symbol %q exceeds %d characters", symbol, maxSymbolLength)
	}
	if exchange == "" {
		return nil, fmt.Errorf("exchange is required")
	}

	ticker := &entity.Ticker{
		Symbol:   symbol,
		Name:     name,
		Sector:   sector,
		Exchange: strings.ToUpper(exchange),
	}
	if err := u.tickers.Register(ctx, ticker); err != nil {
		return nil, err
	}
	return ticker, nil
}

// Lookup returns the registered ticker for a symbol.
func (u *TickerUsecase) Lookup(ctx context.Context, symbol string) (*entity.Ticker, error) {
	return u.tickers.FindBySymbol(ctx, strings.ToUpper(strings.TrimSpace(symbol)))
}

// List returns all registered tickers.
func (u *TickerUsecase) List(ctx context.Context) ([]entity.Ticker, error) {
	return u.tickers.List(ctx)
}
