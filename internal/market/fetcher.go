package market

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/frnietz/newsletter-tr/internal/api"
	"github.com/frnietz/newsletter-tr/internal/logger"
	"github.com/frnietz/newsletter-tr/internal/memo"
	"github.com/frnietz/newsletter-tr/internal/store"
	"github.com/frnietz/newsletter-tr/internal/types"
)

const quoteBaseURL = "https://query1.finance.yahoo.com"

// Fetcher retrieves the latest daily bar for the benchmark index and the
// currency pair and derives a MarketSnapshot. Unlike the news side, a quote
// failure fails the whole cycle.
type Fetcher struct {
	client      *api.Client
	indexSymbol string
	fxSymbol    string
	clock       types.Clock
	cache       *memo.Slot[types.MarketSnapshot]
}

// chartResponse mirrors the subset of the Yahoo Finance chart payload we use.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Open  []float64 `json:"open"`
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// NewFetcher creates a quote fetcher from config.
func NewFetcher(cfg *store.Config, clock types.Clock) *Fetcher {
	client := api.NewClient(
		api.WithBaseURL(quoteBaseURL),
		api.WithTimeout(30*time.Second),
		api.WithHeader("User-Agent", "Mozilla/5.0 (compatible; newsletter-tr/1.0)"),
		api.WithLogging(true),
	)

	return &Fetcher{
		client:      client,
		indexSymbol: cfg.Market.IndexSymbol,
		fxSymbol:    cfg.Market.FXSymbol,
		clock:       clock,
		cache:       memo.New[types.MarketSnapshot](time.Duration(cfg.Cache.TTLMinutes)*time.Minute, clock),
	}
}

// FetchSnapshot returns the current market snapshot, reusing the memoized
// one inside the TTL window.
func (f *Fetcher) FetchSnapshot(ctx context.Context) (types.MarketSnapshot, error) {
	if cached, ok := f.cache.Get(); ok {
		logger.Info(ctx, "Using cached market snapshot", "fetched_at", cached.FetchedAt)
		return cached, nil
	}

	indexOpen, indexClose, err := f.fetchDailyBar(ctx, f.indexSymbol)
	if err != nil {
		return types.MarketSnapshot{}, fmt.Errorf("fetch index %s: %w", f.indexSymbol, err)
	}

	_, fxClose, err := f.fetchDailyBar(ctx, f.fxSymbol)
	if err != nil {
		return types.MarketSnapshot{}, fmt.Errorf("fetch fx %s: %w", f.fxSymbol, err)
	}

	snapshot := types.MarketSnapshot{
		IndexClose:     round2(indexClose),
		IndexChangePct: round2((indexClose/indexOpen - 1) * 100),
		FXRate:         round2(fxClose),
		FetchedAt:      f.clock.Now(),
	}

	f.cache.Set(snapshot)
	logger.Info(ctx, "Market snapshot fetched",
		"index_close", snapshot.IndexClose,
		"index_change_pct", snapshot.IndexChangePct,
		"fx_rate", snapshot.FXRate)
	return snapshot, nil
}

// fetchDailyBar returns the open and close of the most recent daily bar.
func (f *Fetcher) fetchDailyBar(ctx context.Context, symbol string) (open, close float64, err error) {
	path := fmt.Sprintf("/v8/finance/chart/%s?range=1d&interval=1d", url.PathEscape(symbol))

	resp, err := f.client.GET(ctx, path)
	if err != nil {
		return 0, 0, err
	}

	var chart chartResponse
	if err := resp.JSON(&chart); err != nil {
		return 0, 0, fmt.Errorf("decode chart response: %w", err)
	}

	if chart.Chart.Error != nil {
		return 0, 0, fmt.Errorf("chart API error: %s (%s)",
			chart.Chart.Error.Description, chart.Chart.Error.Code)
	}
	if len(chart.Chart.Result) == 0 {
		return 0, 0, fmt.Errorf("no chart result for %s", symbol)
	}

	quotes := chart.Chart.Result[0].Indicators.Quote
	if len(quotes) == 0 || len(quotes[0].Open) == 0 || len(quotes[0].Close) == 0 {
		return 0, 0, fmt.Errorf("empty quote series for %s", symbol)
	}

	bar := quotes[0]
	if len(bar.Open) != len(bar.Close) {
		return 0, 0, fmt.Errorf("ragged quote series for %s: %d opens, %d closes",
			symbol, len(bar.Open), len(bar.Close))
	}
	last := len(bar.Close) - 1
	if bar.Open[last] == 0 {
		return 0, 0, fmt.Errorf("zero open price for %s", symbol)
	}

	return bar.Open[last], bar.Close[last], nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
