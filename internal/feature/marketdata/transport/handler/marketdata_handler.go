// Package handler provides the HTTP handlers for the marketdata feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tick_store/internal/feature/marketdata/domain"
	"tick_store/internal/feature/marketdata/domain/entity"
	"tick_store/internal/feature/marketdata/transport/http/dto"
	tickerdomain "tick_store/internal/feature/tickers/domain"
	tickerentity "tick_store/internal/feature/tickers/domain/entity"
	"tick_store/internal/shared/dates"
)

// MarketDataUsecase defines the usecase interface consumed by the handler.
type MarketDataUsecase interface {
	TradesInRange(ctx context.Context, tickerID uint, from, to time.Time) ([]entity.Trade, error)
	QuotesInRange(ctx context.Context, tickerID uint, from, to time.Time) ([]entity.Quote, error)
	IsDayComplete(ctx context.Context, kind entity.Kind, tickerID uint, date time.Time) (bool, error)
	CompletedDates(ctx context.Context, kind entity.Kind, tickerID uint) ([]time.Time, error)
}

// TickerResolver resolves the symbol in the URL to a registered ticker.
type TickerResolver interface {
	Lookup(ctx context.Context, symbol string) (*tickerentity.Ticker, error)
}

// MarketDataHandler handles HTTP requests for stored ticks and day status.
type MarketDataHandler struct {
	uc      MarketDataUsecase
	tickers TickerResolver
}

// NewMarketDataHandler creates a new MarketDataHandler.
func NewMarketDataHandler(uc MarketDataUsecase, tickers TickerResolver) *MarketDataHandler {
	return &MarketDataHandler{uc: uc, tickers: tickers}
}

// resolve turns the :symbol path parameter into a ticker id, writing the
// error response itself when that fails.
func (h *MarketDataHandler) resolve(c *gin.Context) (*tickerentity.Ticker, bool) {
	ticker, err := h.tickers.Lookup(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		if errors.Is(err, tickerdomain.ErrTickerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return nil, false
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return nil, false
	}
	return ticker, true
}

// dateRange parses the required from/to query parameters.
func dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := dates.Parse(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date: " + err.Error()})
		return time.Time{}, time.Time{}, false
	}
	to, err := dates.Parse(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date: " + err.Error()})
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to date precedes from date"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// Trades handles GET /trades/:symbol?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *MarketDataHandler) Trades(c *gin.Context) {
	ticker, ok := h.resolve(c)
	if !ok {
		return
	}
	from, to, ok := dateRange(c)
	if !ok {
		return
	}

	trades, err := h.uc.TradesInRange(c.Request.Context(), ticker.ID, from, to)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.TradeResponse, 0, len(trades))
	for _, t := range trades {
		out = append(out, dto.TradeResponse{
			Date:      dates.Format(t.Date),
			Timestamp: t.Timestamp,
			Price:     t.Price,
			Volume:    t.Volume,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Quotes handles GET /quotes/:symbol?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *MarketDataHandler) Quotes(c *gin.Context) {
	ticker, ok := h.resolve(c)
	if !ok {
		return
	}
	from, to, ok := dateRange(c)
	if !ok {
		return
	}

	quotes, err := h.uc.QuotesInRange(c.Request.Context(), ticker.ID, from, to)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, dto.QuoteResponse{
			Date:      dates.Format(q.Date),
			Timestamp: q.Timestamp,
			AskPrice:  q.AskPrice,
			AskVolume: q.AskVolume,
			BidPrice:  q.BidPrice,
			BidVolume: q.BidVolume,
		})
	}
	c.JSON(http.StatusOK, out)
}

// DayStatus handles GET /status/:kind/:symbol/:date.
func (h *MarketDataHandler) DayStatus(c *gin.Context) {
	kind := entity.Kind(c.Param("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrUnknownKind.Error()})
		return
	}
	ticker, ok := h.resolve(c)
	if !ok {
		return
	}
	date, err := dates.Parse(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + err.Error()})
		return
	}

	complete, err := h.uc.IsDayComplete(c.Request.Context(), kind, ticker.ID, date)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.DayStatusResponse{
		Symbol:   ticker.Symbol,
		Kind:     string(kind),
		Date:     dates.Format(date),
		Complete: complete,
	})
}

// CompletedDates handles GET /status/:kind/:symbol.
func (h *MarketDataHandler) CompletedDates(c *gin.Context) {
	kind := entity.Kind(c.Param("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrUnknownKind.Error()})
		return
	}
	ticker, ok := h.resolve(c)
	if !ok {
		return
	}

	completed, err := h.uc.CompletedDates(c.Request.Context(), kind, ticker.ID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]string, 0, len(completed))
	for _, d := range completed {
		out = append(out, dates.Format(d))
	}
	c.JSON(http.StatusOK, dto.CompletedDatesResponse{
		Symbol: ticker.Symbol,
		Kind:   string(kind),
		Dates:  out,
	})
}
