package history

import (
	"time"

	"github.com/google/uuid"

	"EconTrack/internal/store"
)

// FileRecord is one file written during a run.
type FileRecord struct {
	Name string
	Path string
	Rows int
}

// RunRecord summarizes one domain update for later inspection.
type RunRecord struct {
	RunID    string
	Domain   string // "market", "bonds" or "indicators"
	Started  time.Time
	Finished time.Time
	OK       bool
	Files    []FileRecord
}

// NewRunRecord starts a record for a domain update with a fresh run ID.
func NewRunRecord(domain string) *RunRecord {
	return &RunRecord{
		RunID:   uuid.NewString(),
		Domain:  domain,
		Started: time.Now(),
	}
}

// AddResults appends the store's written-file results to the record.
func (r *RunRecord) AddResults(results []store.UpdateResult) {
	for _, res := range results {
		r.Files = append(r.Files, FileRecord{Name: res.Name, Path: res.Path, Rows: res.Rows})
	}
}

// Recorder archives update runs.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
