package collector

import (
	"context"
	"log"
	"time"

	"EconTrack/internal/model"
	"EconTrack/internal/stats"
	"EconTrack/internal/store"
)

const (
	// indicatorLookbackDays is the default indicator history window.
	indicatorLookbackDays = 5 * 365
	// yoyPeriods is the monthly offset for year-over-year changes.
	yoyPeriods = 12
)

// DefaultIndicators is the macro set fetched when no catalog overrides it.
var DefaultIndicators = []model.SeriesRequest{
	{Name: "Unemployment_Rate", SeriesID: "UNRATE"},
	{Name: "CPI_Inflation", SeriesID: "CPIAUCSL"},
	{Name: "Core_CPI", SeriesID: "CPILFESL"},
	{Name: "GDP_Growth", SeriesID: "A191RL1Q225SBEA"},
	{Name: "Industrial_Production", SeriesID: "INDPRO"},
	{Name: "Consumer_Sentiment", SeriesID: "UMCSENT"},
	{Name: "Retail_Sales", SeriesID: "RSXFS"},
	{Name: "Housing_Starts", SeriesID: "HOUST"},
	{Name: "Initial_Claims", SeriesID: "ICSA"},
	{Name: "Fed_Funds_Rate", SeriesID: "FEDFUNDS"},
}

// FetchIndicators fetches each requested indicator over [start, end] with its
// Frequency/Units metadata. Zero bounds default to a five-year window ending
// today.
func FetchIndicators(ctx context.Context, src SeriesSource, requests []model.SeriesRequest, start, end time.Time) []Outcome {
	if len(requests) == 0 {
		requests = DefaultIndicators
	}
	if end.IsZero() {
		end = time.Now()
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -indicatorLookbackDays)
	}
	return fetchSeries(ctx, src, requests, start, end, true)
}

// DeriveInflationYoY computes the year-over-year percent change of the
// CPI_Inflation table. Rows without twelve prior periods, or with an absent
// endpoint, are dropped. Returns nil when the CPI table is missing.
func DeriveInflationYoY(tables *model.TableSet) *model.SeriesTable {
	t, ok := tables.Get("CPI_Inflation")
	if !ok {
		log.Println("[WARN] CPI data not found, cannot compute inflation rate")
		return nil
	}
	cpi, ok := t.(*model.SeriesTable)
	if !ok {
		return nil
	}
	rows := make([]model.Observation, 0, cpi.Len())
	for i := yoyPeriods; i < len(cpi.Rows); i++ {
		cur, prev := cpi.Rows[i], cpi.Rows[i-yoyPeriods]
		if cur.Value == nil || prev.Value == nil {
			continue
		}
		change, err := stats.Change(*cur.Value, *prev.Value)
		if err != nil {
			continue
		}
		rows = append(rows, model.Observation{Date: cur.Date, Value: model.Float(change * 100)})
	}
	return &model.SeriesTable{
		DisplayName: "Inflation_Rate_YoY",
		SeriesID:    cpi.SeriesID,
		ValueLabel:  "Inflation_Rate",
		Frequency:   cpi.Frequency,
		Units:       cpi.Units,
		Rows:        rows,
	}
}

// RelabelGDPGrowth copies the GDP_Growth table under the GDP_Growth_QoQ name.
// The provider series is already quarter-over-quarter annualized, so only the
// value column label changes.
func RelabelGDPGrowth(tables *model.TableSet) *model.SeriesTable {
	t, ok := tables.Get("GDP_Growth")
	if !ok {
		log.Println("[WARN] GDP data not found, cannot relabel growth series")
		return nil
	}
	gdp, ok := t.(*model.SeriesTable)
	if !ok {
		return nil
	}
	out := *gdp
	out.DisplayName = "GDP_Growth_QoQ"
	out.ValueLabel = "GDP_Growth_QoQ_Annualized"
	return &out
}

// UpdateIndicators fetches the indicator set, appends the derived inflation
// and GDP views, and writes one CSV per series into dir.
func UpdateIndicators(ctx context.Context, src SeriesSource, requests []model.SeriesRequest, dir string) ([]store.UpdateResult, error) {
	outcomes := FetchIndicators(ctx, src, requests, time.Time{}, time.Time{})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tables := Tables(outcomes)
	if infl := DeriveInflationYoY(tables); infl != nil {
		if err := tables.Add(infl); err != nil {
			log.Printf("[WARN] %v", err)
		}
	}
	if gdp := RelabelGDPGrowth(tables); gdp != nil {
		if err := tables.Add(gdp); err != nil {
			log.Printf("[WARN] %v", err)
		}
	}
	return store.Save(tables, dir)
}
