package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tick_store/internal/feature/collector/usecase"
	mdentity "tick_store/internal/feature/marketdata/domain/entity"
	"tick_store/internal/platform/externalapi/polygon/dto"
	"tick_store/internal/shared/dates"
)

const (
	// pageLimit is the maximum result count per ticks page; a full page
	// means another page may follow.
	pageLimit = 50000

	// maxRetries bounds how often a failing request is retried before the
	// day is given up.
	maxRetries = 3
)

// PolygonMarket implements the MarketAPI interface against the Polygon.io
// historic ticks endpoints.
type PolygonMarket struct {
	cfg    Config
	client *http.Client
}

var _ usecase.MarketAPI = (*PolygonMarket)(nil)

// NewPolygonMarket creates a PolygonMarket with the given configuration and
// HTTP client.
func NewPolygonMarket(cfg Config, client *http.Client) *PolygonMarket {
	return &PolygonMarket{cfg: cfg, client: client}
}

// CompanyDetails fetches registration details for a symbol from
// /v1/meta/symbols/{ticker}/company.
func (p *PolygonMarket) CompanyDetails(ctx context.Context, symbol string) (*usecase.CompanyInfo, error) {
	u := fmt.Sprintf("%s/v1/meta/symbols/%s/company?apiKey=%s",
		p.cfg.BaseURL, url.PathEscape(symbol), url.QueryEscape(p.cfg.APIKey))

	var body dto.CompanyResponse
	if err := p.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.Symbol == "" {
		return nil, fmt.Errorf("polygon: no company details for %q", symbol)
	}

	return &usecase.CompanyInfo{
		Symbol:   body.Symbol,
		Name:     body.Name,
		Sector:   body.Sector,
		Exchange: body.Exchange,
	}, nil
}

// TradesForDay fetches every trade tick for (symbol, date) from
// /v2/ticks/stocks/trades/{ticker}/{date}, following timestamp-offset
// pagination until a short page arrives.
func (p *PolygonMarket) TradesForDay(ctx context.Context, symbol string, date time.Time) ([]mdentity.TradeTick, error) {
	var ticks []mdentity.TradeTick
	offset := int64(0)

	for {
		u := p.ticksURL("trades", symbol, date, offset)
		var body dto.TradesResponse
		if err := p.getJSON(ctx, u, &body); err != nil {
			return nil, err
		}

		results := body.Results
		// The offset element itself is returned again as the first row of
		// every follow-up page.
		if offset != 0 && len(results) > 0 {
			results = results[1:]
		}
		for _, r := range results {
			ticks = append(ticks, mdentity.TradeTick{
				Timestamp: r.Timestamp,
				Price:     r.Price,
				Volume:    r.Size,
			})
		}

		if body.ResultsCount < pageLimit || len(body.Results) == 0 {
			return ticks, nil
		}
		offset = body.Results[len(body.Results)-1].Timestamp
	}
}

// QuotesForDay fetches every NBBO quote tick for (symbol, date) from
// /v2/ticks/stocks/nbbo/{ticker}/{date}.
func (p *PolygonMarket) QuotesForDay(ctx context.Context, symbol string, date time.Time) ([]mdentity.QuoteTick, error) {
	var ticks []mdentity.QuoteTick
	offset := int64(0)

	for {
		u := p.ticksURL("nbbo", symbol, date, offset)
		var body dto.QuotesResponse
		if err := p.getJSON(ctx, u, &body); err != nil {
			return nil, err
		}

		results := body.Results
		if offset != 0 && len(results) > 0 {
			results = results[1:]
		}
		for _, r := range results {
			ticks = append(ticks, mdentity.QuoteTick{
				Timestamp: r.Timestamp,
				AskPrice:  r.AskPrice,
				AskVolume: r.AskSize,
				BidPrice:  r.BidPrice,
				BidVolume: r.BidSize,
			})
		}

		if body.ResultsCount < pageLimit || len(body.Results) == 0 {
			return ticks, nil
		}
		offset = body.Results[len(body.Results)-1].Timestamp
	}
}

// ticksURL builds a historic ticks page URL.
func (p *PolygonMarket) ticksURL(endpoint, symbol string, date time.Time, offset int64) string {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(pageLimit))
	q.Set("apiKey", p.cfg.APIKey)
	if offset != 0 {
		q.Set("timestamp", strconv.FormatInt(offset, 10))
	}
	return fmt.Sprintf("%s/v2/ticks/stocks/%s/%s/%s?%s",
		p.cfg.BaseURL, endpoint, url.PathEscape(symbol), dates.Format(date), q.Encode())
}

// getJSON performs a GET with bounded retries and decodes the JSON body.
func (p *PolygonMarket) getJSON(ctx context.Context, u string, out any) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			slog.Warn("retrying polygon request", "attempt", attempt, "error", lastErr)
			select {
			case <-time.After(p.cfg.RetryStall):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = p.doGetJSON(ctx, u, out)
		if lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("polygon request failed after %d attempts: %w", maxRetries, lastErr)
}

func (p *PolygonMarket) doGetJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("polygon http %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
