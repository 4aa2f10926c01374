package model

import (
	"fmt"
	"strconv"
	"time"
)

// DateFormat is the calendar format used for dates in every CSV file.
const DateFormat = "2006-01-02"

// SeriesRequest names one series to fetch from a provider.
type SeriesRequest struct {
	Name     string // display name, also the output filename stem
	SeriesID string // provider identifier, e.g. "DGS10"
}

// Observation is a single dated value. Value is nil when the provider
// reports no observation for that date; missing values are never fabricated.
type Observation struct {
	Date  time.Time
	Value *float64
}

// Float returns a pointer to v, for building observations inline.
func Float(v float64) *float64 { return &v }

// Table is any named, date-indexed table the store can write as a CSV file.
type Table interface {
	Name() string
	FileStem() string
	Header() []string
	Records() [][]string
	Len() int
}

// SeriesTable holds one fetched series together with its row tags. Rows keep
// the provider's order and are never re-sorted.
type SeriesTable struct {
	DisplayName string
	SeriesID    string
	ValueLabel  string // value column label; "Value" unless the series is derived
	Frequency   string // optional, attached by the indicators domain
	Units       string // optional, attached by the indicators domain
	Rows        []Observation
}

// NewSeriesTable returns a table tagged for the given request.
func NewSeriesTable(req SeriesRequest, rows []Observation) *SeriesTable {
	return &SeriesTable{
		DisplayName: req.Name,
		SeriesID:    req.SeriesID,
		ValueLabel:  "Value",
		Rows:        rows,
	}
}

func (t *SeriesTable) Name() string     { return t.DisplayName }
func (t *SeriesTable) FileStem() string { return t.DisplayName }
func (t *SeriesTable) Len() int         { return len(t.Rows) }

// Header lists the CSV columns. Frequency and Units appear only when the
// metadata was attached.
func (t *SeriesTable) Header() []string {
	h := []string{"Date", t.ValueLabel, "Series_ID", "Description"}
	if t.Frequency != "" {
		h = append(h, "Frequency")
	}
	if t.Units != "" {
		h = append(h, "Units")
	}
	return h
}

// Records renders one CSV record per observation. Every record carries the
// series and display-name tags; absent values become empty fields.
func (t *SeriesTable) Records() [][]string {
	recs := make([][]string, 0, len(t.Rows))
	for _, o := range t.Rows {
		rec := []string{o.Date.Format(DateFormat), FormatValue(o.Value), t.SeriesID, t.DisplayName}
		if t.Frequency != "" {
			rec = append(rec, t.Frequency)
		}
		if t.Units != "" {
			rec = append(rec, t.Units)
		}
		recs = append(recs, rec)
	}
	return recs
}

// FormatValue renders a value for CSV output; nil becomes an empty field.
func FormatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// TableSet is an ordered, name-keyed collection of tables. A fresh set is
// built per run. Add refuses duplicate names, so a derived series can never
// overwrite its source.
type TableSet struct {
	names  []string
	tables map[string]Table
}

// NewTableSet returns an empty set.
func NewTableSet() *TableSet {
	return &TableSet{tables: make(map[string]Table)}
}

// Add appends t under its display name.
func (s *TableSet) Add(t Table) error {
	name := t.Name()
	if _, ok := s.tables[name]; ok {
		return fmt.Errorf("duplicate table %q", name)
	}
	s.names = append(s.names, name)
	s.tables[name] = t
	return nil
}

// Get returns the table stored under name.
func (s *TableSet) Get(name string) (Table, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// Names returns the display names in insertion order.
func (s *TableSet) Names() []string {
	return append([]string(nil), s.names...)
}

// All returns the tables in insertion order.
func (s *TableSet) All() []Table {
	out := make([]Table, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.tables[name])
	}
	return out
}

// Len returns the number of tables in the set.
func (s *TableSet) Len() int { return len(s.names) }
