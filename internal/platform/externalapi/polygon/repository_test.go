package polygon

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func testConfig(baseURL string) Config {
	return Config{
		APIKey:     "test-key",
		BaseURL:    baseURL,
		RetryStall: time.Millisecond,
	}
}

func TestPolygonMarket_CompanyDetails_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/meta/symbols/AAPL/company" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("apiKey") != "test-key" {
			t.Errorf("expected apiKey test-key, got %s", r.URL.Query().Get("apiKey"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"symbol": "AAPL",
			"name": "Apple Inc.",
			"sector": "Technology",
			"exchangeSymbol": "NASDAQ"
		}`))
	}))
	defer server.Close()

	market := NewPolygonMarket(testConfig(server.URL), server.Client())

	info, err := market.CompanyDetails(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", info.Symbol)
	}
	if info.Name != "Apple Inc." {
		t.Errorf("expected name Apple Inc., got %s", info.Name)
	}
	if info.Exchange != "NASDAQ" {
		t.Errorf("expected exchange NASDAQ, got %s", info.Exchange)
	}
}

func TestPolygonMarket_CompanyDetails_EmptyBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	market := NewPolygonMarket(testConfig(server.URL), server.Client())

	_, err := market.CompanyDetails(context.Background(), "ZZZZ")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "no company details") {
		t.Errorf("expected missing-details error, got %v", err)
	}
}

func TestPolygonMarket_TradesForDay_SinglePage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/ticks/stocks/trades/AAPL/2024-01-02" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "50000" {
			t.Errorf("expected limit 50000, got %s", r.URL.Query().Get("limit"))
		}
		if r.URL.Query().Get("timestamp") != "" {
			t.Errorf("first page must carry no timestamp offset, got %s", r.URL.Query().Get("timestamp"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"results_count": 2,
			"results": [
				{"t": 1704207600000, "p": 185.40, "s": 100},
				{"t": 1704207601000, "p": 185.42, "s": 250}
			],
			"success": true
		}`))
	}))
	defer server.Close()

	market := NewPolygonMarket(testConfig(server.URL), server.Client())

	ticks, err := market.TradesForDay(context.Background(), "AAPL", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ticks) != 2 {
		t.Fatalf("expected 2 ticks, got %d", len(ticks))
	}
	if ticks[0].Timestamp != 1704207600000 {
		t.Errorf("expected timestamp 1704207600000, got %d", ticks[0].Timestamp)
	}
	if ticks[0].Price != 185.40 {
		t.Errorf("expected price 185.40, got %f", ticks[0].Price)
	}
	if ticks[1].Volume != 250 {
		t.Errorf("expected volume 250, got %d", ticks[1].Volume)
	}
}

func TestPolygonMarket_TradesForDay_Pagination(t *testing.T) {
	t.Parallel()

	// A full first page triggers a follow-up request offset at the last
	// timestamp; the offset element comes back as the first row of the
	// follow-up page and must not be counted twice.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if r.URL.Query().Get("timestamp") == "" {
			fmt.Fprintf(w, `{"results_count": %d, "results": [`, pageLimit)
			for i := 0; i < pageLimit; i++ {
				if i > 0 {
					fmt.Fprint(w, ",")
				}
				fmt.Fprintf(w, `{"t": %d, "p": 185.0, "s": 1}`, 1000+i)
			}
			fmt.Fprint(w, `], "success": true}`)
			return
		}

		if r.URL.Query().Get("timestamp") != fmt.Sprint(1000+pageLimit-1) {
			t.Errorf("unexpected offset %s", r.URL.Query().Get("timestamp"))
		}
		fmt.Fprintf(w, `{
			"results_count": 3,
			"results": [
				{"t": %d, "p": 185.0, "s": 1},
				{"t": 999001, "p": 185.5, "s": 2},
				{"t": 999002, "p": 185.6, "s": 3}
			],
			"success": true
		}`, 1000+pageLimit-1)
	}))
	defer server.Close()

	market := NewPolygonMarket(testConfig(server.URL), server.Client())

	ticks, err := market.TradesForDay(context.Background(), "AAPL", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ticks) != pageLimit+2 {
		t.Fatalf("expected %d ticks, got %d", pageLimit+2, len(ticks))
	}
	if ticks[pageLimit].Timestamp != 999001 {
		t.Errorf("expected first follow-up tick at 999001, got %d", ticks[pageLimit].Timestamp)
	}
}

func TestPolygonMarket_QuotesForDay_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/ticks/stocks/nbbo/AAPL/2024-01-02" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"results_count": 1,
			"results": [
				{"t": 1704207600000, "p": 185.40, "s": 200, "P": 185.45, "S": 300}
			],
			"success": true
		}`))
	}))
	defer server.Close()

	market := NewPolygonMarket(testConfig(server.URL), server.Client())

	ticks, err := market.QuotesForDay(context.Background(), "AAPL", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ticks) != 1 {
		t.Fatalf("expected 1 tick, got %d", len(ticks))
	}
	if ticks[0].BidPrice != 185.40 || ticks[0].BidVolume != 200 {
		t.Errorf("unexpected bid %f/%d", ticks[0].BidPrice, ticks[0].BidVolume)
	}
	if ticks[0].AskPrice != 185.45 || ticks[0].AskVolume != 300 {
		t.Errorf("unexpected ask %f/%d", ticks[0].AskPrice, ticks[0].AskVolume)
	}
}

func TestPolygonMarket_RetriesBeforeGivingUp(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	market := NewPolygonMarket(testConfig(server.URL), server.Client())

	_, err := market.TradesForDay(context.Background(), "AAPL", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "polygon http 503") {
		t.Errorf("expected HTTP error message, got %v", err)
	}
	if got := calls.Load(); got != maxRetries {
		t.Errorf("expected %d attempts, got %d", maxRetries, got)
	}
}

func TestPolygonMarket_RetryRecovers(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"results_count": 1, "results": [{"t": 1, "p": 185.0, "s": 1}], "success": true}`))
	}))
	defer server.Close()

	market := NewPolygonMarket(testConfig(server.URL), server.Client())

	ticks, err := market.TradesForDay(context.Background(), "AAPL", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ticks) != 1 {
		t.Fatalf("expected 1 tick, got %d", len(ticks))
	}
}

func TestPolygonMarket_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	market := NewPolygonMarket(testConfig(server.URL), server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := market.TradesForDay(ctx, "AAPL", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected error due to context cancellation, got nil")
	}
}

func TestLoadConfig(t *testing.T) {
	cfg := LoadConfig()

	if cfg.BaseURL == "" {
		t.Error("expected a default base URL")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", cfg.Timeout)
	}
}
