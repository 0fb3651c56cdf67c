// Package handler provides the HTTP handlers for the calendar feature.
package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tick_store/internal/feature/calendar/domain/entity"
	"tick_store/internal/feature/calendar/transport/http/dto"
	"tick_store/internal/shared/dates"
)

// CalendarUsecase defines the usecase interface consumed by the handler.
type CalendarUsecase interface {
	Holidays(ctx context.Context, exchange string, from, to time.Time) ([]entity.Holiday, error)
}

// HolidayHandler handles HTTP requests for the holiday calendar.
type HolidayHandler struct {
	uc CalendarUsecase
}

// NewHolidayHandler creates a new HolidayHandler.
func NewHolidayHandler(uc CalendarUsecase) *HolidayHandler {
	return &HolidayHandler{uc: uc}
}

// List handles GET /holidays/:exchange?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *HolidayHandler) List(c *gin.Context) {
	exchange := strings.ToUpper(c.Param("exchange"))

	var from, to time.Time
	var err error
	if s := c.Query("from"); s != "" {
		if from, err = dates.Parse(s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date: " + s})
			return
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err = dates.Parse(s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date: " + s})
			return
		}
	}

	holidays, err := h.uc.Holidays(c.Request.Context(), exchange, from, to)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.HolidayResponse, 0, len(holidays))
	for _, hd := range holidays {
		out = append(out, dto.HolidayResponse{
			Exchange: hd.Exchange,
			Date:     dates.Format(hd.Date),
			Hours:    hd.Hours,
			Day:      hd.Day,
		})
	}
	c.JSON(http.StatusOK, out)
}
