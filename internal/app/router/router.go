// Package router wires the HTTP routes of the tick store.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "tick_store/internal/feature/auth/transport/handler"
	calendarhandler "tick_store/internal/feature/calendar/transport/handler"
	featurehandler "tick_store/internal/feature/features/transport/handler"
	mdhandler "tick_store/internal/feature/marketdata/transport/handler"
	tickerhandler "tick_store/internal/feature/tickers/transport/handler"
	"tick_store/internal/platform/http/handler"
	jwtmw "tick_store/internal/platform/jwt"
)

// NewRouter builds the gin engine. /healthz and /login are public;
// everything touching stored data requires a bearer token.
func NewRouter(
	jwtSecret string,
	auth *authhandler.AuthHandler,
	tickers *tickerhandler.TickerHandler,
	holidays *calendarhandler.HolidayHandler,
	marketdata *mdhandler.MarketDataHandler,
	features *featurehandler.FeatureHandler,
) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.POST("/login", auth.Login)

	guarded := r.Group("/")
	guarded.Use(jwtmw.AuthRequired(jwtSecret))
	{
		guarded.POST("/tickers", tickers.Register)
		guarded.GET("/tickers", tickers.List)
		guarded.GET("/tickers/:symbol", tickers.Get)

		guarded.GET("/holidays/:exchange", holidays.List)

		guarded.GET("/trades/:symbol", marketdata.Trades)
		guarded.GET("/quotes/:symbol", marketdata.Quotes)
		guarded.GET("/status/:kind/:symbol", marketdata.CompletedDates)
		guarded.GET("/status/:kind/:symbol/:date", marketdata.DayStatus)

		guarded.POST("/tickers/:symbol/features", features.Register)
		guarded.GET("/tickers/:symbol/features", features.List)
		guarded.GET("/features/:id/values", features.Values)
	}

	return r
}
