// Package storage provides SQLite-based persistence for recorded runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// ErrRunNotFound is returned when no run has the requested id.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run journals.
type Store struct {
	db *sql.DB
}

// RunSummary is one row of the runs table without its inputs.
type RunSummary struct {
	ID        string
	Seed      int64
	Score     int
	Ticks     uint64
	Phase     sim.Phase
	Inputs    int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			config TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			phase TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS run_inputs (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			input TEXT NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun stores a journal and its inputs in one transaction.
func (s *Store) SaveRun(j replay.Journal) error {
	cfg, err := yaml.Marshal(j.Config)
	if err != nil {
		return fmt.Errorf("storage: cannot encode config: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := j.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = tx.Exec(
		`INSERT INTO runs (id, seed, config, score, ticks, phase, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		j.ID, j.Seed, string(cfg), j.Score, int64(j.Ticks), j.Phase.String(),
		createdAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO run_inputs (run_id, seq, tick, input) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare input insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range j.Entries {
		if _, err := stmt.Exec(j.ID, i, int64(e.Tick), e.Input.String()); err != nil {
			return fmt.Errorf("storage: cannot save input %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return nil
}

// LoadRun retrieves a full journal by id.
func (s *Store) LoadRun(id string) (replay.Journal, error) {
	j := replay.Journal{ID: id}
	var (
		cfg       string
		ticks     int64
		phase     string
		createdAt any
	)

	err := s.db.QueryRow(
		`SELECT seed, config, score, ticks, phase, created_at FROM runs WHERE id = ?`,
		id,
	).Scan(&j.Seed, &cfg, &j.Score, &ticks, &phase, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return replay.Journal{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return replay.Journal{}, fmt.Errorf("storage: cannot query run: %w", err)
	}

	if err := yaml.Unmarshal([]byte(cfg), &j.Config); err != nil {
		return replay.Journal{}, fmt.Errorf("storage: cannot decode config of run %s: %w", id, err)
	}
	j.Ticks = uint64(ticks)
	p, ok := sim.ParsePhase(phase)
	if !ok {
		return replay.Journal{}, fmt.Errorf("storage: run %s has unknown phase %q", id, phase)
	}
	j.Phase = p
	j.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		`SELECT tick, input FROM run_inputs WHERE run_id = ? ORDER BY seq`,
		id,
	)
	if err != nil {
		return replay.Journal{}, fmt.Errorf("storage: cannot query inputs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			tick int64
			name string
		)
		if err := rows.Scan(&tick, &name); err != nil {
			return replay.Journal{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		in, ok := sim.ParseInput(name)
		if !ok {
			return replay.Journal{}, fmt.Errorf("storage: run %s has unknown input %q", id, name)
		}
		j.Entries = append(j.Entries, replay.Entry{Tick: uint64(tick), Input: in})
	}

	if err := rows.Err(); err != nil {
		return replay.Journal{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return j, nil
}

// RecentRuns retrieves the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunSummary, error) {
	return s.summaries("ORDER BY r.created_at DESC", limit)
}

// TopRuns retrieves the best scoring runs.
func (s *Store) TopRuns(limit int) ([]RunSummary, error) {
	return s.summaries("ORDER BY r.score DESC, r.created_at DESC", limit)
}

// BestScore returns the highest recorded score, or 0 if there are no runs.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// DeleteRun removes a run and its inputs.
func (s *Store) DeleteRun(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM run_inputs WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete inputs: %w", err)
	}
	res, err := tx.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return tx.Commit()
}

func (s *Store) summaries(order string, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.seed, r.score, r.ticks, r.phase, r.created_at,
		        (SELECT COUNT(*) FROM run_inputs i WHERE i.run_id = r.id)
		 FROM runs r `+order+`
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			r         RunSummary
			ticks     int64
			phase     string
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.Seed, &r.Score, &ticks, &phase, &createdAt, &r.Inputs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.Phase, _ = sim.ParsePhase(phase)
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

const timeLayout = "2006-01-02 15:04:05"

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
