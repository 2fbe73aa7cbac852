// Package history keeps a SQLite log of finished submissions. It stores
// metadata only, never the submitted text or the returned result.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"go-writing-services/pkg/models"
)

const defaultLimit = 50

// Fixed width so that created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database at dbPath.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows one writer; serialize through a single connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS submissions (
		id TEXT PRIMARY KEY,
		service TEXT NOT NULL,
		lang TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		error_type TEXT NOT NULL DEFAULT '',
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record inserts one entry. Recording the same submission twice keeps the
// latest status.
func (s *Store) Record(ctx context.Context, e models.HistoryEntry) error {
	if e.SubmissionID == "" {
		return fmt.Errorf("submission id is required")
	}
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions (id, service, lang, status, error_type, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			error_type = excluded.error_type,
			duration_ms = excluded.duration_ms`,
		e.SubmissionID, e.Service, e.Lang, e.Status, e.ErrorType, e.DurationMS,
		created.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to record submission %s: %w", e.SubmissionID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. A service filter of ""
// matches every service.
func (s *Store) Recent(ctx context.Context, service string, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, service, lang, status, error_type, duration_ms, created_at
		FROM submissions
		WHERE ? = '' OR service = ?
		ORDER BY created_at DESC
		LIMIT ?`, service, service, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var (
			e       models.HistoryEntry
			created string
		)
		if err := rows.Scan(&e.SubmissionID, &e.Service, &e.Lang, &e.Status, &e.ErrorType, &e.DurationMS, &created); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if e.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("bad created_at %q: %w", created, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
