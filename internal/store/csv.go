package store

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"EconTrack/internal/model"
)

// UpdateResult describes one table written to disk.
type UpdateResult struct {
	Name string // display name
	Path string // file written
	Rows int    // records written; 0 means a header-only file
}

// Save writes every table in the set to <dir>/<stem>.csv, creating the
// directory as needed. Existing files are overwritten, never merged. A table
// that fails to write is logged and left out of the results; the rest of the
// set still gets written.
func Save(tables *model.TableSet, dir string) ([]UpdateResult, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}
	results := make([]UpdateResult, 0, tables.Len())
	for _, t := range tables.All() {
		path := filepath.Join(dir, t.FileStem()+".csv")
		if err := WriteCSV(t, path); err != nil {
			log.Printf("[ERROR] write %s: %v", path, err)
			continue
		}
		log.Printf("[INFO] saved %d records to %s", t.Len(), path)
		results = append(results, UpdateResult{Name: t.Name(), Path: path, Rows: t.Len()})
	}
	return results, nil
}

// WriteCSV writes one table: a header row, then one record per observation.
// A table with no rows still produces a header-only file.
func WriteCSV(t model.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header()); err != nil {
		return err
	}
	for _, rec := range t.Records() {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
