package collector

import (
	"context"
	"log"

	"EconTrack/internal/model"
	"EconTrack/internal/store"
)

// DefaultTickers are the index symbols updated when no catalog overrides them.
var DefaultTickers = []string{"^GSPC", "^DJI", "^IXIC", "^VIX"}

// Default chart-API tokens, passed through to the provider unchanged.
const (
	DefaultPeriod   = "1y"
	DefaultInterval = "1d"
)

// FetchMarket fetches OHLCV history for each ticker. One failed or empty
// ticker never aborts the batch.
func FetchMarket(ctx context.Context, src MarketSource, tickers []string, period, interval string) []Outcome {
	if len(tickers) == 0 {
		tickers = DefaultTickers
	}
	if period == "" {
		period = DefaultPeriod
	}
	if interval == "" {
		interval = DefaultInterval
	}
	outcomes := make([]Outcome, 0, len(tickers))
	for _, ticker := range tickers {
		if ctx.Err() != nil {
			log.Printf("[WARN] fetch interrupted after %d of %d tickers", len(outcomes), len(tickers))
			break
		}
		log.Printf("[INFO] retrieving data for %s", ticker)
		bars, err := src.History(ticker, period, interval)
		if err != nil {
			log.Printf("[ERROR] retrieving data for %s: %v", ticker, err)
			outcomes = append(outcomes, Outcome{Name: ticker, Err: err})
			continue
		}
		if len(bars) == 0 {
			log.Printf("[INFO] no data found for %s", ticker)
			outcomes = append(outcomes, Outcome{Name: ticker})
			continue
		}
		log.Printf("[INFO] retrieved %d records for %s", len(bars), ticker)
		outcomes = append(outcomes, Outcome{Name: ticker, Table: &model.BarTable{Ticker: ticker, Bars: bars}})
	}
	return outcomes
}

// UpdateMarket fetches the index set over the default period and writes one
// CSV per ticker into dir.
func UpdateMarket(ctx context.Context, src MarketSource, tickers []string, dir string) ([]store.UpdateResult, error) {
	outcomes := FetchMarket(ctx, src, tickers, DefaultPeriod, DefaultInterval)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return store.Save(Tables(outcomes), dir)
}
