package history

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so ad-hoc queries can read while an update is writing.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] history recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id     TEXT PRIMARY KEY,
			domain     TEXT NOT NULL,
			started    INTEGER NOT NULL,
			finished   INTEGER NOT NULL,
			ok         INTEGER NOT NULL,
			file_count INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started)`,

		`CREATE TABLE IF NOT EXISTS run_files (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    TEXT NOT NULL,
			name      TEXT NOT NULL,
			path      TEXT NOT NULL,
			row_count INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_files_run ON run_files(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun inserts the run summary and one row per written file.
func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ok := 0
	if rec.OK {
		ok = 1
	}
	_, err := r.db.Exec(`INSERT INTO runs
		(run_id, domain, started, finished, ok, file_count)
		VALUES (?,?,?,?,?,?)`,
		rec.RunID, rec.Domain, rec.Started.Unix(), rec.Finished.Unix(), ok, len(rec.Files),
	)
	if err != nil {
		return err
	}
	for _, f := range rec.Files {
		if _, err := r.db.Exec(`INSERT INTO run_files
			(run_id, name, path, row_count)
			VALUES (?,?,?,?)`,
			rec.RunID, f.Name, f.Path, f.Rows,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing history recorder")
	return r.db.Close()
}
