// Package store provides SQLite-backed persistence for ingested candidates.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
	CREATE TABLE IF NOT EXISTS candidates (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT    UNIQUE NOT NULL,
		name     TEXT    NOT NULL,
		role     TEXT,
		email    TEXT,
		phone    TEXT,
		content  TEXT    NOT NULL
	)
`

// Candidate is one ingested resume record.
type Candidate struct {
	ID       int64
	Filename string
	Name     string
	Role     string
	Email    string
	Phone    string
	Content  string
}

// Store wraps the SQLite database holding candidate records.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates (if needed) and opens the candidate database in dataDir.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "candidates.db")

	// WAL mode so the ingestion watcher and request handlers can share the file
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// UpsertCandidate inserts or replaces a candidate row, keyed on filename.
func (s *Store) UpsertCandidate(ctx context.Context, c Candidate) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO candidates (filename, name, role, email, phone, content)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.Filename, c.Name, c.Role, c.Email, c.Phone, c.Content,
	)
	if err != nil {
		return fmt.Errorf("upserting candidate %s: %w", c.Name, err)
	}
	return nil
}

// AllCandidates returns every candidate row.
func (s *Store) AllCandidates(ctx context.Context) ([]Candidate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, filename, name, role, email, phone, content FROM candidates`)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// CandidateByName returns the candidate with the given display name, or nil
// and no error when absent.
func (s *Store) CandidateByName(ctx context.Context, name string) (*Candidate, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, filename, name, role, email, phone, content
		 FROM candidates WHERE name = ? LIMIT 1`, name)

	c, err := scanCandidate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (Candidate, error) {
	var c Candidate
	var role, email, phone sql.NullString
	if err := row.Scan(&c.ID, &c.Filename, &c.Name, &role, &email, &phone, &c.Content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Candidate{}, err
		}
		return Candidate{}, fmt.Errorf("scanning candidate row: %w", err)
	}
	c.Role = role.String
	c.Email = email.String
	c.Phone = phone.String
	return c, nil
}
