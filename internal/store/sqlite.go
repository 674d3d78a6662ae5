package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// SQLite persists values in a single-table SQLite database. Each Sync is one
// transaction. The database file is created by the first Sync.
type SQLite struct {
	path string

	mu   sync.Mutex
	db   *sql.DB
	vals values
}

// OpenSQLite loads values from the database at path if it exists.
func OpenSQLite(path string) (*SQLite, error) {
	s := &SQLite{path: path, vals: newValues()}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("stat settings db: %w", err)
	}
	if err := s.connect(); err != nil {
		return nil, err
	}
	if err := s.load(context.Background()); err != nil {
		_ = s.db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) connect() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return fmt.Errorf("create settings table: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLite) load(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("scan setting: %w", err)
		}
		s.vals.current[key] = value
	}
	return rows.Err()
}

func (s *SQLite) Path() string { return s.path }

func (s *SQLite) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func (s *SQLite) Value(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vals.get(key)
}

func (s *SQLite) Contains(key string) bool {
	_, ok := s.Value(key)
	return ok
}

func (s *SQLite) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals.set(key, value)
}

func (s *SQLite) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		if err := s.connect(); err != nil {
			return err
		}
	}

	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin settings tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, key := range s.vals.pendingKeys() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO settings (key, value) VALUES (?, ?)
             ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, s.vals.pending[key],
		); err != nil {
			return fmt.Errorf("write setting %q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit settings: %w", err)
	}
	s.vals.commit()
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
