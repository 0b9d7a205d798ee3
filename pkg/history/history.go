// Package history keeps a local log of export runs in a SQLite database
// under the output directory. Each run gets a unique identifier, so two
// exports of the same keyword within the same second (which collide on
// filenames) remain distinguishable here.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/Mouaadag/inseeSearchEngine/pkg/log"
)

// Run records one completed export.
type Run struct {
	ID        string
	Keyword   string
	StartedAt time.Time
	Datasets  int
	IDBanks   int
	Files     []string
}

// Store is the SQLite-backed run log.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// Open opens (or creates) the run log at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("applying pragma %q: %w", pragma, err)
		}
	}

	schema := `CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		keyword TEXT NOT NULL,
		started_at TEXT NOT NULL,
		datasets INTEGER NOT NULL,
		idbanks INTEGER NOT NULL,
		files TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating runs table: %w", err)
	}

	return &Store{
		db:     db,
		logger: log.ForService("history"),
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a run. An empty ID gets a fresh UUID; a zero StartedAt gets
// the current time. The stored run (with generated fields filled in) is
// returned.
func (s *Store) Record(run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	files, err := json.Marshal(run.Files)
	if err != nil {
		return run, fmt.Errorf("marshaling file list: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (id, keyword, started_at, datasets, idbanks, files) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Keyword, run.StartedAt.Format(time.RFC3339), run.Datasets, run.IDBanks, string(files),
	)
	if err != nil {
		return run, fmt.Errorf("recording run: %w", err)
	}

	s.logger.Debugf("recorded run %s for keyword %q", run.ID, run.Keyword)
	return run, nil
}

// List returns the most recent runs, newest first, up to limit (limit <= 0
// means no limit).
func (s *Store) List(limit int) ([]Run, error) {
	query := `SELECT id, keyword, started_at, datasets, idbanks, files FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Warnf("failed to close rows: %v", err)
		}
	}()

	var runs []Run
	for rows.Next() {
		var run Run
		var startedAt, files string
		if err := rows.Scan(&run.ID, &run.Keyword, &startedAt, &run.Datasets, &run.IDBanks, &files); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
			return nil, fmt.Errorf("parsing run timestamp: %w", err)
		}
		if err := json.Unmarshal([]byte(files), &run.Files); err != nil {
			return nil, fmt.Errorf("unmarshaling file list: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
