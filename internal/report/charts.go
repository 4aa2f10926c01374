package report

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"EconTrack/internal/collector"
	"EconTrack/internal/model"
	"EconTrack/internal/stats"
)

const (
	chartWidth  = "1200px"
	chartHeight = "600px"
)

// tickerNames maps filename stems to long index names for chart titles.
var tickerNames = map[string]string{
	"GSPC": "S&P 500",
	"DJI":  "Dow Jones Industrial Average",
	"IXIC": "NASDAQ Composite",
	"VIX":  "CBOE Volatility Index",
}

func tickerName(ticker string) string {
	if name, ok := tickerNames[ticker]; ok {
		return name
	}
	return ticker
}

// newLine builds a line chart with the shared options.
func newLine(title string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "left"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", XAxisIndex: []int{0}}),
	)
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)
	return line
}

// filterRange keeps bars within [start, end]; a zero bound is open.
func filterRange(bars []model.Bar, start, end time.Time) []model.Bar {
	out := make([]model.Bar, 0, len(bars))
	for _, b := range bars {
		if !start.IsZero() && b.Date.Before(start) {
			continue
		}
		if !end.IsZero() && b.Date.After(end) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func barDates(bars []model.Bar) []string {
	x := make([]string, len(bars))
	for i, b := range bars {
		x[i] = b.Date.Format(model.DateFormat)
	}
	return x
}

func lineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

// PriceChart builds a closing-price line for one index.
func PriceChart(table *model.BarTable, start, end time.Time) (*charts.Line, error) {
	bars := filterRange(table.Bars, start, end)
	if len(bars) == 0 {
		return nil, fmt.Errorf("no data for %s in the requested range", table.Ticker)
	}
	title := fmt.Sprintf("%s (%s) Close Price", tickerName(table.Ticker), table.Ticker)
	line := newLine(title)
	line.SetXAxis(barDates(bars))
	line.AddSeries(tickerName(table.Ticker), lineData(stats.Closes(bars)))
	return line, nil
}

// ComparisonChart overlays indices rebased to 100 at the first visible day,
// so different price scales stay comparable. Tickers without data in the
// range are skipped.
func ComparisonChart(tables []*model.BarTable, start, end time.Time) (*charts.Line, error) {
	line := newLine("Normalized Close Price Comparison (first day = 100)")
	added := 0
	for _, table := range tables {
		bars := filterRange(table.Bars, start, end)
		if len(bars) == 0 {
			log.Printf("[WARN] no data for %s in the requested range, skipping", table.Ticker)
			continue
		}
		rebased, err := stats.Rebase(stats.Closes(bars), 100)
		if err != nil {
			log.Printf("[WARN] rebase %s: %v", table.Ticker, err)
			continue
		}
		if added == 0 {
			line.SetXAxis(barDates(bars))
		}
		line.AddSeries(tickerName(table.Ticker), lineData(rebased))
		added++
	}
	if added == 0 {
		return nil, errors.New("no series to compare")
	}
	return line, nil
}

// VolatilityChart plots the rolling annualized volatility of each table's
// close-to-close returns. Tables shorter than the window are skipped.
func VolatilityChart(tables []*model.BarTable, start, end time.Time, window int) (*charts.Line, error) {
	title := fmt.Sprintf("%d-Day Rolling Volatility (annualized)", window)
	line := newLine(title)
	added := 0
	for _, table := range tables {
		bars := filterRange(table.Bars, start, end)
		if len(bars) <= window {
			log.Printf("[WARN] not enough data for %s volatility, skipping", table.Ticker)
			continue
		}
		rets := stats.Returns(stats.Closes(bars))
		rolling, err := stats.RollingStd(rets, window)
		if err != nil {
			log.Printf("[WARN] volatility %s: %v", table.Ticker, err)
			continue
		}
		annualized := make([]float64, len(rolling))
		for i, v := range rolling {
			annualized[i] = stats.AnnualizedVol(v)
		}
		if added == 0 {
			// rolling[i] covers returns through bar window+i.
			dates := make([]string, len(rolling))
			for i := range rolling {
				dates[i] = bars[window+i].Date.Format(model.DateFormat)
			}
			line.SetXAxis(dates)
		}
		line.AddSeries(tickerName(table.Ticker), lineData(annualized))
		added++
	}
	if added == 0 {
		return nil, errors.New("no series with enough data for volatility")
	}
	return line, nil
}

// CurveChart plots a yield-curve snapshot by maturity. Maturities that could
// not be resolved stay as gaps.
func CurveChart(curve *collector.Curve) *charts.Line {
	title := fmt.Sprintf("Treasury Yield Curve %s", curve.Date.Format(model.DateFormat))
	line := newLine(title)
	x := make([]string, len(curve.Points))
	data := make([]opts.LineData, len(curve.Points))
	for i, p := range curve.Points {
		x[i] = p.Maturity
		if p.Yield != nil {
			data[i] = opts.LineData{Value: *p.Yield}
		} else {
			data[i] = opts.LineData{Value: nil}
		}
	}
	line.SetXAxis(x)
	line.AddSeries("Yield %", data)
	return line
}
