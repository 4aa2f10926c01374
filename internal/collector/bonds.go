package collector

import (
	"context"
	"time"

	"EconTrack/internal/model"
	"EconTrack/internal/store"
)

// bondLookbackDays is the default bond history window.
const bondLookbackDays = 365

// DefaultBondSeries is the Treasury set fetched when no catalog overrides it.
var DefaultBondSeries = []model.SeriesRequest{
	{Name: "Treasury_3M", SeriesID: "DTB3"},
	{Name: "Treasury_2Y", SeriesID: "DGS2"},
	{Name: "Treasury_5Y", SeriesID: "DGS5"},
	{Name: "Treasury_10Y", SeriesID: "DGS10"},
	{Name: "Treasury_30Y", SeriesID: "DGS30"},
	{Name: "Yield_Curve", SeriesID: "T10Y2Y"},
}

// FetchBonds fetches each requested Treasury series over [start, end]. Zero
// bounds default to a one-year window ending today. Empty requests fall back
// to DefaultBondSeries.
func FetchBonds(ctx context.Context, src SeriesSource, requests []model.SeriesRequest, start, end time.Time) []Outcome {
	if len(requests) == 0 {
		requests = DefaultBondSeries
	}
	if end.IsZero() {
		end = time.Now()
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -bondLookbackDays)
	}
	return fetchSeries(ctx, src, requests, start, end, false)
}

// UpdateBonds fetches the bond set and writes one CSV per series into dir.
// An interrupt aborts before anything is written.
func UpdateBonds(ctx context.Context, src SeriesSource, requests []model.SeriesRequest, dir string) ([]store.UpdateResult, error) {
	outcomes := FetchBonds(ctx, src, requests, time.Time{}, time.Time{})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return store.Save(Tables(outcomes), dir)
}
