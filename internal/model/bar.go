package model

import (
	"strings"
	"time"
)

// Bar is a single daily OHLCV bar.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// BarTable holds fetched market history for one ticker.
type BarTable struct {
	Ticker string
	Bars   []Bar
}

func (t *BarTable) Name() string { return t.Ticker }

// FileStem strips the index circumflex, so "^GSPC" persists as GSPC_daily.csv.
func (t *BarTable) FileStem() string {
	return strings.TrimPrefix(t.Ticker, "^") + "_daily"
}

func (t *BarTable) Len() int { return len(t.Bars) }

func (t *BarTable) Header() []string {
	return []string{"Date", "Open", "High", "Low", "Close", "Volume"}
}

func (t *BarTable) Records() [][]string {
	recs := make([][]string, 0, len(t.Bars))
	for _, b := range t.Bars {
		recs = append(recs, []string{
			b.Date.Format(DateFormat),
			formatFloat(b.Open),
			formatFloat(b.High),
			formatFloat(b.Low),
			formatFloat(b.Close),
			formatFloat(b.Volume),
		})
	}
	return recs
}
