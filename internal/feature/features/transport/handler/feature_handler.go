// Package handler provides the HTTP handlers for the features feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tick_store/internal/feature/features/domain"
	"tick_store/internal/feature/features/domain/entity"
	"tick_store/internal/feature/features/transport/http/dto"
	tickerdomain "tick_store/internal/feature/tickers/domain"
	tickerentity "tick_store/internal/feature/tickers/domain/entity"
	"tick_store/internal/shared/dates"
)

// FeaturesUsecase defines the usecase interface consumed by the handler.
type FeaturesUsecase interface {
	Register(ctx context.Context, tickerID uint, name string, description *string) (*entity.Feature, error)
	ListByTicker(ctx context.Context, tickerID uint) ([]entity.Feature, error)
	ValuesInRange(ctx context.Context, featureID uint, from, to time.Time) ([]entity.FeatureValue, error)
}

// TickerResolver resolves the symbol in the URL to a registered ticker.
type TickerResolver interface {
	Lookup(ctx context.Context, symbol string) (*tickerentity.Ticker, error)
}

// FeatureHandler handles HTTP requests for the feature registry and values.
type FeatureHandler struct {
	uc      FeaturesUsecase
	tickers TickerResolver
}

// NewFeatureHandler creates a new FeatureHandler.
func NewFeatureHandler(uc FeaturesUsecase, tickers TickerResolver) *FeatureHandler {
	return &FeatureHandler{uc: uc, tickers: tickers}
}

func (h *FeatureHandler) resolve(c *gin.Context) (*tickerentity.Ticker, bool) {
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

// Register handles POST /tickers/:symbol/features.
func (h *FeatureHandler) Register(c *gin.Context) {
	ticker, ok := h.resolve(c)
	if !ok {
		return
	}

	var req dto.RegisterFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feature, err := h.uc.Register(c.Request.Context(), ticker.ID, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrFeatureExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toResponse(feature))
}

// List handles GET /tickers/:symbol/features.
func (h *FeatureHandler) List(c *gin.Context) {
	ticker, ok := h.resolve(c)
	if !ok {
		return
	}

	features, err := h.uc.ListByTicker(c.Request.Context(), ticker.ID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.FeatureResponse, 0, len(features))
	for i := range features {
		out = append(out, toResponse(&features[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Values handles GET /features/:id/values?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *FeatureHandler) Values(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feature id"})
		return
	}
	from, err := dates.Parse(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date: " + err.Error()})
		return
	}
	to, err := dates.Parse(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date: " + err.Error()})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to date precedes from date"})
		return
	}

	// The to bound covers the whole day.
	end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	points, err := h.uc.ValuesInRange(c.Request.Context(), uint(id), from, end)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownFeature) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.FeatureValueResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.FeatureValueResponse{
			Time:  p.Time.UnixMilli(),
			Value: p.Value,
		})
	}
	c.JSON(http.StatusOK, out)
}

func toResponse(f *entity.Feature) dto.FeatureResponse {
	return dto.FeatureResponse{
		ID:          f.ID,
		TickerID:    f.TickerID,
		Name:        f.Name,
		Description: f.Description,
	}
}
