// Package handler provides the HTTP handlers for the tickers feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tick_store/internal/feature/tickers/domain"
	"tick_store/internal/feature/tickers/domain/entity"
	"tick_store/internal/feature/tickers/transport/http/dto"
)

// TickersUsecase defines the usecase interface consumed by the handler.
type TickersUsecase interface {
	Register(ctx context.Context, symbol, name, sector, exchange string) (*entity.Ticker, error)
	Lookup(ctx context.Context, symbol string) (*entity.Ticker, error)
	List(ctx context.Context) ([]entity.Ticker, error)
}

// TickerHandler handles HTTP requests for the ticker registry.
type TickerHandler struct {
	uc TickersUsecase
}

// NewTickerHandler creates a new TickerHandler.
func NewTickerHandler(uc TickersUsecase) *TickerHandler {
	return &TickerHandler{uc: uc}
}

// Register handles POST /tickers.
func (h *TickerHandler) Register(c *gin.Context) {
	var req dto.RegisterTickerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticker, err := h.uc.Register(c.Request.Context(), req.Symbol, req.Name, req.Sector, req.Exchange)
	if err != nil {
		if errors.Is(err, domain.ErrTickerExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toResponse(ticker))
}

// Get handles GET /tickers/:symbol.
func (h *TickerHandler) Get(c *gin.Context) {
	ticker, err := h.uc.Lookup(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		if errors.Is(err, domain.ErrTickerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toResponse(ticker))
}

// List handles GET /tickers.
func (h *TickerHandler) List(c *gin.Context) {
	tickers, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.TickerResponse, 0, len(tickers))
	for i := range tickers {
		out = append(out, toResponse(&tickers[i]))
	}
	c.JSON(http.StatusOK, out)
}

func toResponse(t *entity.Ticker) dto.TickerResponse {
	return dto.TickerResponse{
		ID:       t.ID,
		Symbol:   t.Symbol,
		Name:     t.Name,
		Sector:   t.Sector,
		Exchange: t.Exchange,
	}
}
