package report

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/components"

	"EconTrack/internal/collector"
	"EconTrack/internal/model"
)

// comparisonTickers are the indices overlaid on the comparison chart; the
// volatility chart uses the same set. VIX is charted on its own.
var comparisonTickers = []string{"GSPC", "DJI", "IXIC"}

type renderable interface {
	Render(w io.Writer) error
}

func renderTo(c renderable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.Render(f)
}

// barTables resolves stems to loaded bar tables, keeping request order.
func barTables(set *model.TableSet, stems []string) []*model.BarTable {
	out := make([]*model.BarTable, 0, len(stems))
	for _, stem := range stems {
		if t, ok := set.Get(stem); ok {
			if table, ok := t.(*model.BarTable); ok {
				out = append(out, table)
			}
		}
	}
	return out
}

// WriteMarketReport loads market CSV files from dataDir and writes the
// standard chart set into outDir: one close-price chart per index, the
// normalized comparison, and a volatility page pairing the VIX level with
// rolling index volatility. Zero start/end default to the last 90 days.
// Returns the paths written.
func WriteMarketReport(dataDir, outDir string, tickers []string, start, end time.Time, window int) ([]string, error) {
	if end.IsZero() {
		end = time.Now()
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -90)
	}
	if window <= 0 {
		window = 20
	}

	set := LoadMarketData(dataDir, tickers)
	if set.Len() == 0 {
		return nil, errors.New("no market data loaded; run the updater first")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create report directory: %w", err)
	}

	var saved []string

	for _, t := range set.All() {
		table, ok := t.(*model.BarTable)
		if !ok {
			continue
		}
		chart, err := PriceChart(table, start, end)
		if err != nil {
			log.Printf("[WARN] price chart %s: %v", table.Ticker, err)
			continue
		}
		path := filepath.Join(outDir, table.Ticker+"_price.html")
		if err := renderTo(chart, path); err != nil {
			log.Printf("[ERROR] render %s: %v", path, err)
			continue
		}
		log.Printf("[INFO] wrote %s", path)
		saved = append(saved, path)
	}

	if chart, err := ComparisonChart(barTables(set, comparisonTickers), start, end); err != nil {
		log.Printf("[WARN] comparison chart: %v", err)
	} else {
		path := filepath.Join(outDir, "index_comparison.html")
		if err := renderTo(chart, path); err != nil {
			log.Printf("[ERROR] render %s: %v", path, err)
		} else {
			log.Printf("[INFO] wrote %s", path)
			saved = append(saved, path)
		}
	}

	if page, err := volatilityPage(set, start, end, window); err != nil {
		log.Printf("[WARN] volatility page: %v", err)
	} else {
		path := filepath.Join(outDir, "volatility.html")
		if err := renderTo(page, path); err != nil {
			log.Printf("[ERROR] render %s: %v", path, err)
		} else {
			log.Printf("[INFO] wrote %s", path)
			saved = append(saved, path)
		}
	}

	if len(saved) == 0 {
		return nil, errors.New("no charts could be written")
	}
	return saved, nil
}

// volatilityPage stacks the VIX close chart above the rolling volatility of
// the major indices.
func volatilityPage(set *model.TableSet, start, end time.Time, window int) (*components.Page, error) {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)

	if vix := barTables(set, []string{"VIX"}); len(vix) == 1 {
		if chart, err := PriceChart(vix[0], start, end); err != nil {
			log.Printf("[WARN] VIX chart: %v", err)
		} else {
			page.AddCharts(chart)
		}
	}

	if chart, err := VolatilityChart(barTables(set, comparisonTickers), start, end, window); err != nil {
		log.Printf("[WARN] volatility chart: %v", err)
	} else {
		page.AddCharts(chart)
	}

	if len(page.Charts) == 0 {
		return nil, errors.New("no volatility data")
	}
	return page, nil
}

// WriteCurve renders a yield-curve snapshot chart to path.
func WriteCurve(curve *collector.Curve, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	return renderTo(CurveChart(curve), path)
}
