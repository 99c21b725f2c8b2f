// Package journal records every emitted signal in an embedded SQLite
// database, for the /stats command and later analysis.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"
)

// Entry origins.
const (
	OriginPreview   = "preview"
	OriginBroadcast = "broadcast"
)

// Entry is one recorded signal.
type Entry struct {
	ID         int64
	UserID     int64
	Direction  string // SHORT / LONG
	Confidence string // HIGH / MEDIUM / LOW
	Origin     string // preview / broadcast
	Text       string
	CreatedAt  time.Time // UTC
}

// Journal is the signal log backed by SQLite.
type Journal struct{ db *sql.DB }

// Open opens (or creates) the journal database at the given path,
// applies recommended PRAGMAs, runs SQL migrations, and returns it.
func Open(ctx context.Context, path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Reasonable pooling for SQLite; it's a single-writer engine.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &Journal{db: db}, nil
}

// applyPragmas configures the SQLite connection for durability and concurrency.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database resources.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Append records one emitted signal.
func (j *Journal) Append(ctx context.Context, e Entry) error {
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO signals (user_id, direction, confidence, origin, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.UserID, e.Direction, e.Confidence, e.Origin, e.Text, created.UTC().Unix(),
	)
	return err
}

// RecentByUser returns up to `limit` most recent entries for a user,
// newest first.
func (j *Journal) RecentByUser(ctx context.Context, userID int64, limit int) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, user_id, direction, confidence, origin, text, created_at
		FROM signals
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Entry
	for rows.Next() {
		var (
			e       Entry
			created int64
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Direction, &e.Confidence, &e.Origin, &e.Text, &created); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(created, 0).UTC()
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// CountByUser returns the total number of entries recorded for a user.
func (j *Journal) CountByUser(ctx context.Context, userID int64) (int, error) {
	var n int
	err := j.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM signals WHERE user_id = ?`,
		userID,
	).Scan(&n)
	return n, err
}
