package book

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLite stores the book in two tables, contacts and phones, keeping the
// insertion order in a position column.
type SQLite struct {
	db   *sql.DB
	path string
}

var _ Backend = (*SQLite)(nil)

// OpenSQLite opens (or creates) the database at path. ":memory:" is accepted.
func OpenSQLite(path string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single connection keeps ":memory:" databases alive between calls
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &SQLite{db: db, path: path}, nil
}

func (s *SQLite) initialize(ctx context.Context) error {
	contactsTable := `
	CREATE TABLE IF NOT EXISTS contacts (
		name TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		birthday TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT ''
	);`

	phonesTable := `
	CREATE TABLE IF NOT EXISTS phones (
		contact TEXT NOT NULL,
		position INTEGER NOT NULL,
		phone TEXT NOT NULL,
		PRIMARY KEY (contact, position)
	);`

	for _, stmt := range []string{contactsTable, phonesTable} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Load reads every contact in insertion order. A file that is not a database,
// or a damaged one, is reported as ErrCorrupt. Any other failure (a locked
// database, I/O) is returned as is so the stored book is never replaced.
func (s *SQLite) Load(ctx context.Context) ([]Entry, error) {
	if err := s.initialize(ctx); err != nil {
		return nil, s.loadError(err)
	}

	phones, err := s.loadPhones(ctx)
	if err != nil {
		return nil, s.loadError(err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, birthday, email, address FROM contacts ORDER BY position`)
	if err != nil {
		return nil, s.loadError(err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Birthday, &e.Email, &e.Address); err != nil {
			return nil, s.loadError(err)
		}
		e.Phones = phones[e.Name]
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, s.loadError(err)
	}
	return entries, nil
}

func (s *SQLite) loadError(err error) error {
	if isCorrupt(err) {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return fmt.Errorf("failed to load %s: %w", s.path, err)
}

// isCorrupt reports whether err is SQLite refusing the file contents.
func isCorrupt(err error) bool {
	var sqlErr *sqlite.Error
	if !errors.As(err, &sqlErr) {
		return false
	}
	// extended result codes keep the primary code in the low byte
	switch sqlErr.Code() & 0xff {
	case sqlite3.SQLITE_NOTADB, sqlite3.SQLITE_CORRUPT:
		return true
	}
	return false
}

func (s *SQLite) loadPhones(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT contact, phone FROM phones ORDER BY contact, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	phones := make(map[string][]string)
	for rows.Next() {
		var name, phone string
		if err := rows.Scan(&name, &phone); err != nil {
			return nil, err
		}
		phones[name] = append(phones[name], phone)
	}
	return phones, rows.Err()
}

// Save replaces the stored book with entries in one transaction.
func (s *SQLite) Save(ctx context.Context, entries []Entry) error {
	if err := s.initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{`DELETE FROM phones`, `DELETE FROM contacts`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to clear book: %w", err)
		}
	}

	for i, e := range entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO contacts (name, position, birthday, email, address) VALUES (?, ?, ?, ?, ?)`,
			e.Name, i, e.Birthday, e.Email, e.Address,
		); err != nil {
			return fmt.Errorf("failed to insert contact %q: %w", e.Name, err)
		}
		for j, phone := range e.Phones {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO phones (contact, position, phone) VALUES (?, ?, ?)`,
				e.Name, j, phone,
			); err != nil {
				return fmt.Errorf("failed to insert phone for %q: %w", e.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit book: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
