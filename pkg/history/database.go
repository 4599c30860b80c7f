// Package history keeps an opt-in log of setup runs in a local SQLite
// database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Run is one recorded setup run.
type Run struct {
	ID          string
	StartedAt   time.Time
	Template    string
	Root        string
	Directories int
	Files       int
	DryRun      bool
	Duration    time.Duration
	Success     bool
	Error       string
}

// Summary aggregates all recorded runs.
type Summary struct {
	TotalRuns  int
	FailedRuns int
	LastRun    *time.Time
}

// DB handles database operations
type DB struct {
	db *sql.DB
}

// Open creates or opens the history database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	hdb := &DB{db: db}
	if err := hdb.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return hdb, nil
}

func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		started_at DATETIME NOT NULL,
		template TEXT NOT NULL,
		root TEXT NOT NULL,
		directories INTEGER DEFAULT 0,
		files INTEGER DEFAULT 0,
		dry_run BOOLEAN DEFAULT 0,
		duration_ms INTEGER DEFAULT 0,
		success BOOLEAN NOT NULL,
		error TEXT DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_runs_template ON runs(template);
	`

	_, err := d.db.Exec(schema)
	return err
}

// Record saves r, assigning an ID and start time when they are unset.
func (d *DB) Record(r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now()
	}

	query := `
	INSERT INTO runs (
		id, started_at, template, root, directories, files,
		dry_run, duration_ms, success, error
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := d.db.Exec(query,
		r.ID, r.StartedAt.UTC(), r.Template, r.Root, r.Directories, r.Files,
		r.DryRun, r.Duration.Milliseconds(), r.Success, r.Error,
	)
	if err != nil {
		return r, fmt.Errorf("failed to record run: %w", err)
	}
	return r, nil
}

// List returns up to limit runs, newest first. A limit of zero or less
// returns every run.
func (d *DB) List(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := d.db.Query(`
		SELECT id, started_at, template, root, directories, files,
		       dry_run, duration_ms, success, error
		FROM runs ORDER BY seq DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRuns(rows)
}

// Summary returns aggregate counts over every recorded run.
func (d *DB) Summary() (Summary, error) {
	var s Summary

	err := d.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0) FROM runs
	`).Scan(&s.TotalRuns, &s.FailedRuns)
	if err != nil {
		return s, err
	}

	if s.TotalRuns > 0 {
		var last time.Time
		err = d.db.QueryRow(`SELECT started_at FROM runs ORDER BY seq DESC LIMIT 1`).Scan(&last)
		if err != nil {
			return s, err
		}
		s.LastRun = &last
	}

	return s, nil
}

// DeleteOlderThan removes runs started before the cutoff and returns how
// many were deleted.
func (d *DB) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res, err := d.db.Exec(`DELETE FROM runs WHERE started_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var durationMs int64

		err := rows.Scan(
			&r.ID, &r.StartedAt, &r.Template, &r.Root, &r.Directories, &r.Files,
			&r.DryRun, &durationMs, &r.Success, &r.Error,
		)
		if err != nil {
			return nil, err
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond

		runs = append(runs, r)
	}
	return runs, rows.Err()
}
