package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"EconTrack/internal/model"
)

// DefaultTickers are the filename stems loaded when none are requested. The
// circumflex is already stripped at persist time.
var DefaultTickers = []string{"GSPC", "DJI", "IXIC", "VIX"}

// LoadMarketData reads per-ticker CSV files written by the updater back into
// bar tables. A missing or malformed file is logged and skipped; the loader
// returns whatever it could read.
func LoadMarketData(dir string, tickers []string) *model.TableSet {
	if len(tickers) == 0 {
		tickers = DefaultTickers
	}
	set := model.NewTableSet()
	for _, ticker := range tickers {
		path := filepath.Join(dir, ticker+"_daily.csv")
		f, err := os.Open(path)
		if err != nil {
			log.Printf("[WARN] no data file for %s: %v", ticker, err)
			continue
		}
		table, err := parseBars(ticker, f)
		f.Close()
		if err != nil {
			log.Printf("[ERROR] load %s: %v", path, err)
			continue
		}
		if err := set.Add(table); err != nil {
			log.Printf("[WARN] %v", err)
			continue
		}
		log.Printf("[INFO] loaded %d records for %s", table.Len(), ticker)
	}
	return set
}

// parseBars reads one market CSV: a header row, then
// Date,Open,High,Low,Close,Volume records.
func parseBars(ticker string, r io.Reader) (*model.BarTable, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("empty file")
	}
	table := &model.BarTable{Ticker: ticker, Bars: make([]model.Bar, 0, len(records)-1)}
	for _, rec := range records[1:] {
		if len(rec) < 6 {
			return nil, fmt.Errorf("short record %v", rec)
		}
		date, err := time.Parse(model.DateFormat, rec[0])
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", rec[0], err)
		}
		vals := make([]float64, 5)
		for i := range vals {
			v, err := strconv.ParseFloat(rec[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("row %s: parse %q: %w", rec[0], rec[i+1], err)
			}
			vals[i] = v
		}
		table.Bars = append(table.Bars, model.Bar{
			Date:   date,
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: vals[4],
		})
	}
	return table, nil
}
