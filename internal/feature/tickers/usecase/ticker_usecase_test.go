package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tick_store/internal/feature/tickers/domain"
	"tick_store/internal/feature/tickers/domain/entity"
)

var errDB = errors.New("database error")

// mockTickerRepository is a mock implementation of the TickerRepository interface.
type mockTickerRepository struct {
	RegisterFunc     func(ctx context.Context, ticker *entity.Ticker) error
	FindBySymbolFunc func(ctx context.Context, symbol string) (*entity.Ticker, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*entity.Ticker, error)
	ListFunc         func(ctx context.Context) ([]entity.Ticker, error)
	RegisterCalls    int
}

func (m *mockTickerRepository) Register(ctx context.Context, ticker *entity.Ticker) error {
	m.RegisterCalls++
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, ticker)
	}
	return nil
}

func (m *mockTickerRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.Ticker, error) {
	if m.FindBySymbolFunc != nil {
		return m.FindBySymbolFunc(ctx, symbol)
	}
	return nil, domain.ErrTickerNotFound
}

func (m *mockTickerRepository) FindByID(ctx context.Context, id uint) (*entity.Ticker, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrTickerNotFound
}

func (m *mockTickerRepository) List(ctx context.Context) ([]entity.Ticker, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func TestTickerUsecase_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		symbol      string
		exchange    string
		registerErr error
		wantSymbol  string
		wantErr     bool
		wantErrIs   error
		wantCalls   int
	}{
		{
			name:       "success: trims and uppercases symbol and exchange",
			symbol:     " aapl ",
			exchange:   "nasdaq",
			wantSymbol: "AAPL",
			wantCalls:  1,
		},
		{
			name:      "empty symbol is rejected before hitting the repository",
			symbol:    "   ",
			exchange:  "NASDAQ",
			wantErr:   true,
			wantCalls: 0,
		},
		{
			name:      "overlong symbol is rejected",
			symbol:    "ABCDEFGHIJK",
			exchange:  "NASDAQ",
			wantErr:   true,
			wantCalls: 0,
		},
		{
			name:      "missing exchange is rejected",
			symbol:    "AAPL",
			exchange:  "",
			wantErr:   true,
			wantCalls: 0,
		},
		{
			name:        "duplicate surfaces unchanged",
			symbol:      "AAPL",
			exchange:    "NASDAQ",
			registerErr: domain.ErrTickerExists,
			wantErr:     true,
			wantErrIs:   domain.ErrTickerExists,
			wantCalls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockTickerRepository{
				RegisterFunc: func(ctx context.Context, ticker *entity.Ticker) error {
					if tt.registerErr != nil {
						return tt.registerErr
					}
					ticker.ID = 1
					return nil
				},
			}
			uc := NewTickerUsecase(repo)

			ticker, err := uc.Register(context.Background(), tt.symbol, "Apple Inc.", "Technology", tt.exchange)

			assert.Equal(t, tt.wantCalls, repo.RegisterCalls)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSymbol, ticker.Symbol)
			assert.Equal(t, "NASDAQ", ticker.Exchange)
			assert.Equal(t, uint(1), ticker.ID)
		})
	}
}

func TestTickerUsecase_Lookup(t *testing.T) {
	t.Parallel()

	repo := &mockTickerRepository{
		FindBySymbolFunc: func(ctx context.Context, symbol string) (*entity.Ticker, error) {
			if symbol == "AAPL" {
				return &entity.Ticker{ID: 1, Symbol: "AAPL"}, nil
			}
			return nil, domain.ErrTickerNotFound
		},
	}
	uc := NewTickerUsecase(repo)

	ticker, err := uc.Lookup(context.Background(), " aapl ")
	require.NoError(t, err)
	assert.Equal(t, uint(1), ticker.ID)

	_, err = uc.Lookup(context.Background(), "MSFT")
	assert.ErrorIs(t, err, domain.ErrTickerNotFound)
}

func TestTickerUsecase_List_Error(t *testing.T) {
	t.Parallel()

	repo := &mockTickerRepository{
		ListFunc: func(ctx context.Context) ([]entity.Ticker, error) {
			return nil, errDB
		},
	}
	uc := NewTickerUsecase(repo)

	_, err := uc.List(context.Background())
	assert.ErrorIs(t, err, errDB)
}
