package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type Status string

const (
	Completed Status = "completed"
	Failed    Status = "failed"
)

var ErrNotFound = errors.New("search not found")

// fixed width so timestamps compare as text
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Search is one row of the audit ledger
type Search struct {
	Id          string
	CreatedAt   time.Time
	QueryLength int
	Hits        int
	Results     int
	Status      Status
	Message     string
}

const schema = `
CREATE TABLE IF NOT EXISTS searches (
	id           TEXT PRIMARY KEY,
	created_at   TEXT NOT NULL,
	query_length INTEGER NOT NULL,
	hits         INTEGER NOT NULL,
	results      INTEGER NOT NULL,
	status       TEXT NOT NULL,
	message      TEXT NOT NULL DEFAULT ''
)`

// Repository records every search the service ran
type Repository struct {
	db *sql.DB
}

func Open(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening audit database %s: %w", path, err)
	}
	// sqlite serialises writers anyway
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating audit schema: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Record stores the search, replacing an earlier run with the same id
func (r *Repository) Record(ctx context.Context, s Search) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO searches (id, created_at, query_length, hits, results, status, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.Id, s.CreatedAt.UTC().Format(timeLayout), s.QueryLength, s.Hits, s.Results, string(s.Status), s.Message)
	if err != nil {
		return fmt.Errorf("recording search %s: %w", s.Id, err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (Search, error) {
	var (
		s         Search
		createdAt string
		status    string
	)
	row := r.db.QueryRowContext(ctx,
		`SELECT id, created_at, query_length, hits, results, status, message FROM searches WHERE id = ?`, id)
	if err := row.Scan(&s.Id, &createdAt, &s.QueryLength, &s.Hits, &s.Results, &status, &s.Message); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Search{}, ErrNotFound
		}
		return Search{}, err
	}

	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return Search{}, fmt.Errorf("parsing created_at of %s: %w", id, err)
	}
	s.CreatedAt = t
	s.Status = Status(status)
	return s, nil
}

// DeleteBefore drops rows older than the cutoff
func (r *Repository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM searches WHERE created_at < ?`, cutoff.UTC().Format(timeLayout))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
