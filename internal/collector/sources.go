package collector

import (
	"time"

	"EconTrack/internal/fred"
	"EconTrack/internal/model"
)

// SeriesSource fetches dated observations and metadata for provider series.
// *fred.Client satisfies it.
type SeriesSource interface {
	Series(seriesID string, start, end time.Time) ([]model.Observation, error)
	Info(seriesID string) (fred.SeriesInfo, error)
}

// MarketSource fetches OHLCV history for tickers. *yahoo.Client satisfies it.
type MarketSource interface {
	History(ticker, period, interval string) ([]model.Bar, error)
}
