// Package store keeps a named library of résumé documents in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"resumeview/internal/resume"
)

// ErrNotFound is returned when no document is stored under a name.
var ErrNotFound = errors.New("resume not found")

// ErrEmptyName is returned when a document is stored without a name.
var ErrEmptyName = errors.New("resume name is empty")

// Entry describes one stored document.
type Entry struct {
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is a SQLite-backed résumé library.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// SQLite wants a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := migrate(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// connPragmas run on every new connection the pool opens.
var connPragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(WAL)",
}

func dsn(path string) string {
	q := url.Values{}
	for _, p := range connPragmas {
		q.Add("_pragma", p)
	}
	return path + "?" + q.Encode()
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS resumes (
			name TEXT PRIMARY KEY,
			content TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put validates raw as a résumé document and stores it under name,
// replacing any previous version.
func (s *Store) Put(ctx context.Context, name string, raw []byte) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if _, err := resume.Parse(raw); err != nil {
		return fmt.Errorf("resume %q: %w", name, err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO resumes (name, content, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at
	`, name, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store resume %q: %w", name, err)
	}
	slog.Debug("resume stored", "name", name, "bytes", len(raw))
	return nil
}

// Raw returns the stored source of the document called name.
func (s *Store) Raw(ctx context.Context, name string) ([]byte, error) {
	var content string
	err := s.db.QueryRowContext(ctx,
		"SELECT content FROM resumes WHERE name = ?", name,
	).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load resume %q: %w", name, err)
	}
	return []byte(content), nil
}

// Get returns the parsed document called name.
func (s *Store) Get(ctx context.Context, name string) (resume.Document, error) {
	raw, err := s.Raw(ctx, name)
	if err != nil {
		return nil, err
	}
	doc, err := resume.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("resume %q: %w", name, err)
	}
	return doc, nil
}

// List returns every stored document ordered by name.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, updated_at FROM resumes ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan resume: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the document called name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM resumes WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete resume %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete resume %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}
