package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	calendaradapters "tick_store/internal/feature/calendar/adapters"
	calendarusecase "tick_store/internal/feature/calendar/usecase"
	collectorusecase "tick_store/internal/feature/collector/usecase"
	mdadapters "tick_store/internal/feature/marketdata/adapters"
	mdentity "tick_store/internal/feature/marketdata/domain/entity"
	mdusecase "tick_store/internal/feature/marketdata/usecase"
	tickeradapters "tick_store/internal/feature/tickers/adapters"
	tickerusecase "tick_store/internal/feature/tickers/usecase"
	"tick_store/internal/platform/config"
	"tick_store/internal/platform/db"
	"tick_store/internal/platform/externalapi/polygon"
	platformhttp "tick_store/internal/platform/http"
	"tick_store/internal/shared/dates"
	"tick_store/internal/shared/ratelimiter"
)

func main() {
	symbol := flag.String("symbol", "", "ticker symbol to collect, e.g. AAPL")
	kindFlag := flag.String("kind", "trades", "tick kind: trades or quotes")
	fromFlag := flag.String("from", "", "first date to collect (YYYY-MM-DD)")
	toFlag := flag.String("to", "", "last date to collect (YYYY-MM-DD)")
	calendarPath := flag.String("calendar", "", "optional holiday calendar CSV to seed before collecting")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall run timeout")
	flag.Parse()

	if *symbol == "" || *fromFlag == "" || *toFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	from, err := dates.Parse(*fromFlag)
	if err != nil {
		log.Fatalf("invalid -from: %v", err)
	}
	to, err := dates.Parse(*toFlag)
	if err != nil {
		log.Fatalf("invalid -to: %v", err)
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	tickerUC := tickerusecase.NewTickerUsecase(tickeradapters.NewTickerRepository(gormDB))
	calendarUC := calendarusecase.NewCalendarUsecase(calendaradapters.NewHolidayRepository(gormDB))
	mdUC := mdusecase.NewMarketDataUsecase(
		mdadapters.NewTradeRepository(gormDB),
		mdadapters.NewQuoteRepository(gormDB),
		mdadapters.NewSummaryRepository(gormDB),
	)

	if *calendarPath != "" {
		if err := seedCalendar(ctx, calendarUC, *calendarPath); err != nil {
			log.Fatal(err)
		}
		log.Println("calendar seeded from", *calendarPath)
	}

	market := polygon.NewPolygonMarket(polygon.LoadConfig(), platformhttp.NewHTTPClient(cfg.Polygon.Timeout))
	limiter := ratelimiter.NewRateLimiter(cfg.Polygon.RequestsPerMinute, time.Minute)
	collector := collectorusecase.NewCollectorUsecase(market, tickerUC, calendarUC, mdUC, limiter)

	if err := collector.Collect(ctx, *symbol, mdentity.Kind(*kindFlag), from, to); err != nil {
		log.Fatal(err)
	}
	log.Println("collect ok")
}

func seedCalendar(ctx context.Context, uc *calendarusecase.CalendarUsecase, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open calendar: %w", err)
	}
	defer func() { _ = f.Close() }()

	holidays, err := calendaradapters.LoadCalendarCSV(f)
	if err != nil {
		return err
	}
	return uc.Seed(ctx, holidays)
}
