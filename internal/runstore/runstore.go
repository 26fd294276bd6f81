// Package runstore records match runs in a local SQLite database, so
// scenario outcomes can be compared across invocations.
//
// One table, append-only writes, newest-first listing. Parameter maps
// travel as JSON text; NaN flux values (failed re-evaluations) are
// stored as NULL and restored as NaN.
package runstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/voxfield/fluxgrid/match"
)

var (
	// ErrClosed indicates an operation on a closed store.
	ErrClosed = errors.New("runstore: store is closed")
	// ErrNotFound indicates the requested run id does not exist.
	ErrNotFound = errors.New("runstore: run not found")
)

const createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    scenario TEXT NOT NULL,
    success INTEGER NOT NULL,
    message TEXT NOT NULL,
    target_flux REAL,
    final_flux REAL,
    objective REAL,
    params TEXT NOT NULL,
    evaluations INTEGER NOT NULL,
    iterations INTEGER NOT NULL
);`

// Run is one recorded match outcome.
type Run struct {
	ID        string
	CreatedAt time.Time
	Scenario  string
	Result    match.Result
}

// Store is a handle to one runs database. Not safe for concurrent use
// beyond what database/sql provides; the CLI opens, writes, closes.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the runs database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("runstore: open %s: %w", path, err)
	}
	if _, err := db.Exec(createRuns); err != nil {
		db.Close()
		return nil, fmt.Errorf("runstore: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Save records one match result under a fresh run id and returns it.
func (s *Store) Save(scenario string, res match.Result) (string, error) {
	if s.db == nil {
		return "", ErrClosed
	}
	paramsJSON, err := json.Marshal(res.Params)
	if err != nil {
		return "", fmt.Errorf("runstore: encode params: %w", err)
	}

	id := newRunID()
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.Exec(
		`INSERT INTO runs (run_id, created_at, scenario, success, message,
		  target_flux, final_flux, objective, params, evaluations, iterations)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, createdAt, scenario, boolToInt(res.Success), res.Message,
		nullableFloat(res.TargetFlux), nullableFloat(res.FinalFlux),
		nullableFloat(res.Objective), string(paramsJSON),
		res.Evaluations, res.Iterations,
	)
	if err != nil {
		return "", fmt.Errorf("runstore: save run: %w", err)
	}
	return id, nil
}

// Get retrieves one run by id.
func (s *Store) Get(id string) (Run, error) {
	if s.db == nil {
		return Run{}, ErrClosed
	}
	row := s.db.QueryRow(
		`SELECT run_id, created_at, scenario, success, message,
		  target_flux, final_flux, objective, params, evaluations, iterations
		 FROM runs WHERE run_id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("runstore: get run %s: %w", id, err)
	}
	return run, nil
}

// List returns the newest runs, most recent first. limit <= 0 selects
// the default page of 20.
func (s *Store) List(limit int) ([]Run, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT run_id, created_at, scenario, success, message,
		  target_flux, final_flux, objective, params, evaluations, iterations
		 FROM runs ORDER BY created_at DESC, run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("runstore: list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("runstore: list runs: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("runstore: list runs: %w", err)
	}
	return runs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run        Run
		createdAt  string
		success    int
		target     sql.NullFloat64
		final      sql.NullFloat64
		objective  sql.NullFloat64
		paramsJSON string
	)
	err := row.Scan(&run.ID, &createdAt, &run.Scenario, &success, &run.Result.Message,
		&target, &final, &objective, &paramsJSON,
		&run.Result.Evaluations, &run.Result.Iterations)
	if err != nil {
		return Run{}, err
	}
	run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(paramsJSON), &run.Result.Params); err != nil {
		return Run{}, fmt.Errorf("decode params: %w", err)
	}
	run.Result.Success = success != 0
	run.Result.TargetFlux = floatOrNaN(target)
	run.Result.FinalFlux = floatOrNaN(final)
	run.Result.Objective = floatOrNaN(objective)
	return run, nil
}

// newRunID returns a UUID v7 (time-ordered), falling back to v4 if the
// clock source fails.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullableFloat maps NaN to NULL; SQLite has no NaN representation.
func nullableFloat(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

func floatOrNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
