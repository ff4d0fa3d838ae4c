// Package storage persists check runs and their findings to SQLite so
// earlier runs can be listed and re-exported without re-reading the upload.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"plucheck/pipeline"
)

type SQLiteStore struct {
	db *sql.DB
}

var ErrRunNotFound = errors.New("run not found")

// Run is one stored check run, without its findings.
type Run struct {
	ID         int64
	SchemaName string
	UploadFile string
	HeaderRow  int
	RowsLoaded int
	Findings   int
	CreatedAt  time.Time
}

// StoredFinding is one finding row with the section it was reported under.
type StoredFinding struct {
	Category string
	Line     int
	RefIndex int
	Message  string
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	schema_name TEXT NOT NULL,
	upload_file TEXT NOT NULL,
	header_row INTEGER NOT NULL,
	rows_loaded INTEGER NOT NULL,
	findings INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS findings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id INTEGER NOT NULL,
	category TEXT NOT NULL,
	line INTEGER NOT NULL,
	ref_index INTEGER NOT NULL,
	message TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_findings_run ON findings(run_id);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SaveReport stores one run with all its findings and returns the run ID.
func (s *SQLiteStore) SaveReport(report *pipeline.Report) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	res, err := tx.Exec(`
INSERT INTO runs (schema_name, upload_file, header_row, rows_loaded, findings, created_at)
VALUES (?, ?, ?, ?, ?, ?);`,
		report.SchemaName,
		report.UploadPath,
		report.HeaderRow,
		report.RowsLoaded,
		report.TotalFindings(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("read inserted run id: %w", err)
	}

	stmt, err := tx.Prepare(`
INSERT INTO findings (run_id, category, line, ref_index, message)
VALUES (?, ?, ?, ?, ?);`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for _, section := range report.Sections {
		for _, finding := range section.Findings {
			if _, err := stmt.Exec(runID, section.Title, finding.Line, finding.RefIndex, finding.Message); err != nil {
				_ = tx.Rollback()
				return 0, fmt.Errorf("insert finding: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return runID, nil
}

// ListRuns returns every stored run, oldest first.
func (s *SQLiteStore) ListRuns() ([]Run, error) {
	rows, err := s.db.Query(`
SELECT id, schema_name, upload_file, header_row, rows_loaded, findings, created_at
FROM runs
ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0, 16)
	for rows.Next() {
		var (
			run        Run
			createdRaw string
		)
		if err := rows.Scan(&run.ID, &run.SchemaName, &run.UploadFile, &run.HeaderRow, &run.RowsLoaded, &run.Findings, &createdRaw); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339, createdRaw)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp %q: %w", createdRaw, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// FindingsForRun returns a run's findings in stored order. ErrRunNotFound is
// returned when the run ID does not exist; a run with zero findings is not an
// error.
func (s *SQLiteStore) FindingsForRun(runID int64) ([]StoredFinding, error) {
	var exists int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM runs WHERE id = ?;`, runID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("query run %d: %w", runID, err)
	}
	if exists == 0 {
		return nil, ErrRunNotFound
	}

	rows, err := s.db.Query(`
SELECT category, line, ref_index, message
FROM findings
WHERE run_id = ?
ORDER BY id;`, runID)
	if err != nil {
		return nil, fmt.Errorf("query findings for run %d: %w", runID, err)
	}
	defer rows.Close()

	findings := make([]StoredFinding, 0, 32)
	for rows.Next() {
		var f StoredFinding
		if err := rows.Scan(&f.Category, &f.Line, &f.RefIndex, &f.Message); err != nil {
			return nil, fmt.Errorf("scan finding: %w", err)
		}
		findings = append(findings, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate findings: %w", err)
	}
	return findings, nil
}

// LatestRunID returns the most recent run's ID; found is false on an empty
// store.
func (s *SQLiteStore) LatestRunID() (int64, bool, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM runs ORDER BY id DESC LIMIT 1;`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query latest run: %w", err)
	}
	return id, true, nil
}

// DeleteRun removes a run and its findings.
func (s *SQLiteStore) DeleteRun(runID int64) (bool, error) {
	if runID <= 0 {
		return false, fmt.Errorf("run id must be > 0")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM findings WHERE run_id = ?;`, runID); err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("delete findings for run %d: %w", runID, err)
	}
	res, err := tx.Exec(`DELETE FROM runs WHERE id = ?;`, runID)
	if err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("delete run %d: %w", runID, err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("read deleted row count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}
	return removed > 0, nil
}
