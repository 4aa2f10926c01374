package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"EconTrack/internal/fred"
	"EconTrack/internal/model"
)

func day(s string) time.Time {
	d, err := time.Parse(model.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func obsRange(startDay string, values ...float64) []model.Observation {
	start := day(startDay)
	out := make([]model.Observation, len(values))
	for i, v := range values {
		out[i] = model.Observation{Date: start.AddDate(0, 0, i), Value: model.Float(v)}
	}
	return out
}

func TestFetchBonds_PartialFailure(t *testing.T) {
	src := &MockSeriesSource{
		Observations: map[string][]model.Observation{
			"DTB3":  obsRange("2024-01-02", 5.2, 5.21),
			"DGS10": obsRange("2024-01-02", 4.0, 4.02),
		},
		Errs: map[string]error{"DGS2": errors.New("bad request")},
	}
	requests := []model.SeriesRequest{
		{Name: "Treasury_3M", SeriesID: "DTB3"},
		{Name: "Treasury_2Y", SeriesID: "DGS2"},
		{Name: "Treasury_10Y", SeriesID: "DGS10"},
	}
	outcomes := FetchBonds(context.Background(), src, requests, day("2024-01-01"), day("2024-02-01"))
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Err != nil || outcomes[0].Table == nil {
		t.Errorf("expected success for Treasury_3M, got %+v", outcomes[0])
	}
	if outcomes[1].Err == nil {
		t.Error("expected error outcome for Treasury_2Y")
	}
	if outcomes[2].Table == nil {
		t.Error("expected the batch to continue past the failure")
	}

	set := Tables(outcomes)
	if set.Len() != 2 {
		t.Fatalf("expected 2 tables from 3 outcomes, got %d", set.Len())
	}
	names := set.Names()
	if names[0] != "Treasury_3M" || names[1] != "Treasury_10Y" {
		t.Errorf("expected batch order preserved, got %v", names)
	}
}

func TestFetchBonds_EmptySeriesOmitted(t *testing.T) {
	src := &MockSeriesSource{
		Observations: map[string][]model.Observation{"T10Y2Y": {}},
	}
	requests := []model.SeriesRequest{{Name: "Yield_Curve", SeriesID: "T10Y2Y"}}
	outcomes := FetchBonds(context.Background(), src, requests, day("2024-01-01"), day("2024-02-01"))
	if len(outcomes) != 1 {
		t.Fatalf("expected 1 outcome, got %d", len(outcomes))
	}
	if !outcomes[0].Empty() {
		t.Errorf("expected empty outcome, got %+v", outcomes[0])
	}
	if Tables(outcomes).Len() != 0 {
		t.Error("expected no tables for an empty series")
	}
}

func TestFetchBonds_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &MockSeriesSource{}
	outcomes := FetchBonds(ctx, src, nil, time.Time{}, time.Time{})
	if len(outcomes) != 0 {
		t.Errorf("expected no outcomes after cancellation, got %d", len(outcomes))
	}
}

func TestFetchIndicators_AttachesMetadata(t *testing.T) {
	src := &MockSeriesSource{
		Observations: map[string][]model.Observation{
			"UNRATE": obsRange("2024-01-01", 3.7),
		},
		Infos: map[string]fred.SeriesInfo{
			"UNRATE": {ID: "UNRATE", Frequency: "Monthly", Units: "Percent"},
		},
	}
	requests := []model.SeriesRequest{{Name: "Unemployment_Rate", SeriesID: "UNRATE"}}
	outcomes := FetchIndicators(context.Background(), src, requests, time.Time{}, time.Time{})
	if len(outcomes) != 1 || outcomes[0].Table == nil {
		t.Fatalf("unexpected outcomes: %+v", outcomes)
	}
	table := outcomes[0].Table.(*model.SeriesTable)
	if table.Frequency != "Monthly" || table.Units != "Percent" {
		t.Errorf("expected metadata attached, got %q %q", table.Frequency, table.Units)
	}
}

func TestFetchIndicators_MetadataFailureKeepsSeries(t *testing.T) {
	src := &seriesOnlySource{
		obs: map[string][]model.Observation{
			"UMCSENT": obsRange("2024-01-01", 79.0),
		},
	}
	requests := []model.SeriesRequest{{Name: "Consumer_Sentiment", SeriesID: "UMCSENT"}}
	outcomes := FetchIndicators(context.Background(), src, requests, time.Time{}, time.Time{})
	if len(outcomes) != 1 {
		t.Fatalf("expected 1 outcome, got %d", len(outcomes))
	}
	if outcomes[0].Err != nil || outcomes[0].Table == nil {
		t.Fatalf("expected the series to survive a metadata failure, got %+v", outcomes[0])
	}
	table := outcomes[0].Table.(*model.SeriesTable)
	if table.Frequency != "" || table.Units != "" {
		t.Errorf("expected no metadata tags, got %q %q", table.Frequency, table.Units)
	}
}

// seriesOnlySource fails every metadata call.
type seriesOnlySource struct {
	obs map[string][]model.Observation
}

func (s *seriesOnlySource) Series(id string, _, _ time.Time) ([]model.Observation, error) {
	return s.obs[id], nil
}

func (s *seriesOnlySource) Info(id string) (fred.SeriesInfo, error) {
	return fred.SeriesInfo{}, errors.New("metadata unavailable")
}

func TestFetchMarket_PartialFailure(t *testing.T) {
	src := &MockMarketSource{
		Bars: map[string][]model.Bar{
			"^GSPC": {{Date: day("2024-01-02"), Open: 4745, High: 4754, Low: 4722, Close: 4742.83, Volume: 3743050000}},
			"^VIX":  {{Date: day("2024-01-02"), Open: 13.2, High: 14.1, Low: 13.1, Close: 13.5}},
		},
		Errs: map[string]error{"^DJI": errors.New("timeout")},
	}
	outcomes := FetchMarket(context.Background(), src, []string{"^GSPC", "^DJI", "^VIX"}, "", "")
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	if outcomes[1].Err == nil {
		t.Error("expected error outcome for ^DJI")
	}
	set := Tables(outcomes)
	if set.Len() != 2 {
		t.Fatalf("expected 2 tables, got %d", set.Len())
	}
	if _, ok := set.Get("^GSPC"); !ok {
		t.Error("expected ^GSPC table present")
	}
}
