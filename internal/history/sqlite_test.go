package history

import (
	"path/filepath"
	"testing"
	"time"

	"EconTrack/internal/store"
)

func TestSQLiteRecorder_RecordRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	rec, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer rec.Close()

	run := NewRunRecord("bonds")
	if run.RunID == "" {
		t.Fatal("expected a run ID")
	}
	run.AddResults([]store.UpdateResult{
		{Name: "Treasury_10Y", Path: "data/bonds/Treasury_10Y.csv", Rows: 250},
		{Name: "Yield_Curve", Path: "data/bonds/Yield_Curve.csv", Rows: 0},
	})
	run.Finished = time.Now()
	run.OK = true

	if err := rec.RecordRun(run); err != nil {
		t.Fatalf("record run: %v", err)
	}

	var domain string
	var fileCount int
	row := rec.db.QueryRow(`SELECT domain, file_count FROM runs WHERE run_id = ?`, run.RunID)
	if err := row.Scan(&domain, &fileCount); err != nil {
		t.Fatalf("read back run: %v", err)
	}
	if domain != "bonds" || fileCount != 2 {
		t.Errorf("unexpected run row: %s %d", domain, fileCount)
	}

	var rows int
	row = rec.db.QueryRow(`SELECT row_count FROM run_files WHERE run_id = ? AND name = ?`, run.RunID, "Treasury_10Y")
	if err := row.Scan(&rows); err != nil {
		t.Fatalf("read back file row: %v", err)
	}
	if rows != 250 {
		t.Errorf("expected 250 rows recorded, got %d", rows)
	}
}

func TestSQLiteRecorder_ReopenKeepsSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	rec, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	run := NewRunRecord("market")
	run.Finished = time.Now()
	if err := rec.RecordRun(run); err != nil {
		t.Fatalf("record: %v", err)
	}
	rec.Close()

	rec2, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer rec2.Close()

	var count int
	if err := rec2.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&count); err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if count != 1 {
		t.Errorf("expected the recorded run to survive reopen, got %d", count)
	}
}
