package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Board names used in the run history.
const (
	BoardCareer = "career"
	BoardRecent = "recent"
)

// Run summarizes one recorded ranking run.
type Run struct {
	ID          string
	Board       string
	GeneratedAt time.Time
	Players     int
	TopPersonID string
	TopScore    float64
}

type runRow struct {
	ID          string  `db:"id"`
	Board       string  `db:"board"`
	GeneratedAt string  `db:"generated_at"`
	Players     int     `db:"players"`
	TopPersonID string  `db:"top_person_id"`
	TopScore    float64 `db:"top_score"`
}

type scoreRow struct {
	PersonID string  `db:"person_id"`
	Score    float64 `db:"score"`
}

// HistoryStore persists ranking runs so later runs can report movement.
type HistoryStore interface {
	// RecordRun stores a run and its ranked entries atomically.
	RecordRun(ctx context.Context, run Run, entries []Entry) error
	// LatestScores returns person id -> score from the newest run on board.
	// Returns ErrNoRuns when the board has no history.
	LatestScores(ctx context.Context, board string) (map[string]float64, error)
	// ListRuns returns the newest runs first.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	Close() error
}

// SQLiteHistory implements HistoryStore using SQLite.
type SQLiteHistory struct {
	db *sqlx.DB
}

// NewSQLiteHistory opens a SQLite database and runs migrations.
func NewSQLiteHistory(path string) (*SQLiteHistory, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoHistoryPath
	}
	db, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteHistory{db: db}, nil
}

// Close closes the database.
func (s *SQLiteHistory) Close() error {
	return s.db.Close()
}

// RecordRun implements HistoryStore.RecordRun.
func (s *SQLiteHistory) RecordRun(ctx context.Context, run Run, entries []Entry) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run %s: %w", run.ID, err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, board, generated_at, players, top_person_id, top_score)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.Board, run.GeneratedAt.UTC().Format(time.RFC3339), run.Players, run.TopPersonID, run.TopScore)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO run_scores (run_id, person_id, board_rank, score) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare scores: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, run.ID, e.PersonID, e.Rank, e.Score); err != nil {
			return fmt.Errorf("insert score %s/%s: %w", run.ID, e.PersonID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run %s: %w", run.ID, err)
	}
	return nil
}

// LatestScores implements HistoryStore.LatestScores.
func (s *SQLiteHistory) LatestScores(ctx context.Context, board string) (map[string]float64, error) {
	var runID string
	err := s.db.GetContext(ctx, &runID,
		"SELECT id FROM runs WHERE board = ? ORDER BY seq DESC LIMIT 1", board)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRuns
		}
		return nil, fmt.Errorf("latest run %s: %w", board, err)
	}

	var rows []scoreRow
	if err := s.db.SelectContext(ctx, &rows,
		"SELECT person_id, score FROM run_scores WHERE run_id = ?", runID); err != nil {
		return nil, fmt.Errorf("scores for run %s: %w", runID, err)
	}

	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.PersonID] = r.Score
	}
	return out, nil
}

// ListRuns implements HistoryStore.ListRuns.
func (s *SQLiteHistory) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	var rows []runRow
	if err := s.db.SelectContext(ctx, &rows, `
		SELECT id, board, generated_at, players, top_person_id, top_score
		FROM runs ORDER BY seq DESC LIMIT ?
	`, limit); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	out := make([]Run, 0, len(rows))
	for _, r := range rows {
		ts, err := time.Parse(time.RFC3339, r.GeneratedAt)
		if err != nil {
			return nil, fmt.Errorf("run %s generated_at %q: %w", r.ID, r.GeneratedAt, err)
		}
		out = append(out, Run{
			ID:          r.ID,
			Board:       r.Board,
			GeneratedAt: ts,
			Players:     r.Players,
			TopPersonID: r.TopPersonID,
			TopScore:    r.TopScore,
		})
	}
	return out, nil
}
