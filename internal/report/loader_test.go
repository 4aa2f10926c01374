package report

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"EconTrack/internal/model"
	"EconTrack/internal/store"
)

func day(s string) time.Time {
	d, err := time.Parse(model.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestParseBars(t *testing.T) {
	body := strings.Join([]string{
		"Date,Open,High,Low,Close,Volume",
		"2024-03-01,5100.5,5150,5090.25,5137.08,4200000000",
		"2024-03-04,5130,5160.5,5120,5155.25,3900000000",
	}, "\n")
	table, err := parseBars("GSPC", strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 bars, got %d", table.Len())
	}
	first := table.Bars[0]
	if !first.Date.Equal(day("2024-03-01")) || first.Close != 5137.08 || first.Volume != 4200000000 {
		t.Errorf("unexpected first bar: %+v", first)
	}
}

func TestParseBars_HeaderOnly(t *testing.T) {
	table, err := parseBars("VIX", strings.NewReader("Date,Open,High,Low,Close,Volume\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("expected no bars, got %d", table.Len())
	}
}

func TestParseBars_BadRow(t *testing.T) {
	body := "Date,Open,High,Low,Close,Volume\n2024-03-01,abc,5150,5090,5137,42\n"
	if _, err := parseBars("GSPC", strings.NewReader(body)); err == nil {
		t.Error("expected error for unparseable number")
	}
}

func TestLoadMarketData_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	set := model.NewTableSet()
	set.Add(&model.BarTable{Ticker: "^GSPC", Bars: []model.Bar{
		{Date: day("2024-03-01"), Open: 5100.5, High: 5150, Low: 5090.25, Close: 5137.08, Volume: 4200000000},
		{Date: day("2024-03-04"), Open: 5130, High: 5160.5, Low: 5120, Close: 5155.25, Volume: 3900000000},
	}})
	set.Add(&model.BarTable{Ticker: "^VIX", Bars: []model.Bar{
		{Date: day("2024-03-01"), Open: 13.2, High: 14.1, Low: 13.1, Close: 13.5},
	}})
	if _, err := store.Save(set, dir); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := LoadMarketData(dir, []string{"GSPC", "VIX", "DJI"})
	// DJI was never written and must simply be skipped.
	if loaded.Len() != 2 {
		t.Fatalf("expected 2 tables, got %d", loaded.Len())
	}
	gspc, ok := loaded.Get("GSPC")
	if !ok {
		t.Fatal("expected GSPC table")
	}
	bars := gspc.(*model.BarTable).Bars
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[1].Close != 5155.25 {
		t.Errorf("round trip lost data: %+v", bars[1])
	}
}

func TestFilterRange(t *testing.T) {
	bars := []model.Bar{
		{Date: day("2024-01-01")},
		{Date: day("2024-02-01")},
		{Date: day("2024-03-01")},
	}
	got := filterRange(bars, day("2024-01-15"), day("2024-02-15"))
	if len(got) != 1 || !got[0].Date.Equal(day("2024-02-01")) {
		t.Errorf("unexpected filtered bars: %+v", got)
	}
	if got := filterRange(bars, time.Time{}, time.Time{}); len(got) != 3 {
		t.Errorf("expected open bounds to keep everything, got %d", len(got))
	}
}

func TestWriteMarketReport(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "market")
	outDir := filepath.Join(t.TempDir(), "reports")

	bars := make([]model.Bar, 0, 40)
	price := 5000.0
	start := day("2024-01-01")
	for i := 0; i < 40; i++ {
		price *= 1.001
		bars = append(bars, model.Bar{
			Date: start.AddDate(0, 0, i), Open: price, High: price * 1.01,
			Low: price * 0.99, Close: price, Volume: 1000000,
		})
	}
	set := model.NewTableSet()
	set.Add(&model.BarTable{Ticker: "^GSPC", Bars: bars})
	if _, err := store.Save(set, dataDir); err != nil {
		t.Fatalf("save: %v", err)
	}

	saved, err := WriteMarketReport(dataDir, outDir, []string{"GSPC"}, day("2024-01-01"), day("2024-03-01"), 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Price chart, comparison and the volatility page.
	if len(saved) != 3 {
		t.Fatalf("expected 3 files, got %d: %v", len(saved), saved)
	}
	want := []string{
		filepath.Join(outDir, "GSPC_price.html"),
		filepath.Join(outDir, "index_comparison.html"),
		filepath.Join(outDir, "volatility.html"),
	}
	for i := range want {
		if saved[i] != want[i] {
			t.Errorf("file %d: expected %s, got %s", i, want[i], saved[i])
		}
	}
}
