package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"tick_store/internal/app/router"
	authhandler "tick_store/internal/feature/auth/transport/handler"
	authusecase "tick_store/internal/feature/auth/usecase"
	calendaradapters "tick_store/internal/feature/calendar/adapters"
	calendarhandler "tick_store/internal/feature/calendar/transport/handler"
	calendarusecase "tick_store/internal/feature/calendar/usecase"
	featureadapters "tick_store/internal/feature/features/adapters"
	featurehandler "tick_store/internal/feature/features/transport/handler"
	featureusecase "tick_store/internal/feature/features/usecase"
	mdadapters "tick_store/internal/feature/marketdata/adapters"
	mdhandler "tick_store/internal/feature/marketdata/transport/handler"
	mdusecase "tick_store/internal/feature/marketdata/usecase"
	tickeradapters "tick_store/internal/feature/tickers/adapters"
	tickerhandler "tick_store/internal/feature/tickers/transport/handler"
	tickerusecase "tick_store/internal/feature/tickers/usecase"
	"tick_store/internal/platform/cache"
	"tick_store/internal/platform/config"
	"tick_store/internal/platform/db"
	jwtmw "tick_store/internal/platform/jwt"
	platformredis "tick_store/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gormDB, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Redis is optional; without it the store reads straight from the database.
	var rdb *redisv9.Client
	if cfg.Redis.Host != "" {
		if tmp, err := platformredis.NewRedisClient(cfg.Redis); err != nil {
			slog.Warn("Redis unavailable, running without cache", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repository
	tickerRepo := tickeradapters.NewTickerRepository(gormDB)
	holidayRepo := calendaradapters.NewHolidayRepository(gormDB)
	tradeRepo := mdadapters.NewTradeRepository(gormDB)
	quoteRepo := mdadapters.NewQuoteRepository(gormDB)
	summaryRepo := cache.NewCachingSummaryRepository(rdb, 0, mdadapters.NewSummaryRepository(gormDB), "summary")
	featureRepo := featureadapters.NewFeatureRepository(gormDB)
	valueRepo := featureadapters.NewFeatureValueRepository(gormDB)
	featureSummaryRepo := featureadapters.NewFeatureSummaryRepository(gormDB)

	// Usecase
	tickerUC := tickerusecase.NewTickerUsecase(tickerRepo)
	calendarUC := calendarusecase.NewCalendarUsecase(holidayRepo)
	mdUC := mdusecase.NewMarketDataUsecase(tradeRepo, quoteRepo, summaryRepo)
	featureUC := featureusecase.NewFeatureUsecase(featureRepo, valueRepo, featureSummaryRepo)
	authUC := authusecase.NewAuthUsecase(cfg.Auth.OperatorHash, jwtmw.NewGenerator(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL))

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	tickerH := tickerhandler.NewTickerHandler(tickerUC)
	holidayH := calendarhandler.NewHolidayHandler(calendarUC)
	mdH := mdhandler.NewMarketDataHandler(mdUC, tickerUC)
	featureH := featurehandler.NewFeatureHandler(featureUC, tickerUC)

	r := router.NewRouter(cfg.Auth.JWTSecret, authH, tickerH, holidayH, mdH, featureH)

	if cfg.Auth.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	if cfg.Auth.OperatorHash == "" {
		log.Println("[WARN] OPERATOR_PASSWORD_HASH is not set. Login is disabled.")
	}

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
