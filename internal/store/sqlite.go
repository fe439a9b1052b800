package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const queryTimeout = 5 * time.Second

// SQLite keeps preferences in a single key/value table.
type SQLite struct {
	path string
	db   *sql.DB
	now  func() time.Time
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (and creates, if missing) the preference database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("store: empty database path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: create dir: %w", err)
	}

	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// WAL lets the standalone preview server read while the editor writes.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("store: %s: %w", p, err)
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{path: path, db: db, now: time.Now}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS prefs (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return fmt.Errorf("store: migrate: %w", err)
		}
	}
	return nil
}

func (s *SQLite) Path() string { return s.path }

func (s *SQLite) Load(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	v, err := s.get(ctx, key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *SQLite) get(ctx context.Context, key string) (string, error) {
	if s == nil || s.db == nil {
		return "", ErrNotFound
	}
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM prefs WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("store: load %q: %w", key, err)
	}
	return v, nil
}

func (s *SQLite) Save(key, value string) error {
	if s == nil || s.db == nil {
		return errors.New("store: database is closed")
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO prefs(k, v, updated_at_unixms) VALUES(?, ?, ?)`,
		key, value, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("store: save %q: %w", key, err)
	}
	return nil
}

// UpdatedAt reports when key was last written.
func (s *SQLite) UpdatedAt(key string) (time.Time, bool) {
	if s == nil || s.db == nil {
		return time.Time{}, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	var ms int64
	if err := s.db.QueryRowContext(ctx, `SELECT updated_at_unixms FROM prefs WHERE k = ?`, key).Scan(&ms); err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

func (s *SQLite) Clear() error {
	if s == nil || s.db == nil {
		return errors.New("store: database is closed")
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	if _, err := s.db.ExecContext(ctx, `DELETE FROM prefs WHERE k IN (?, ?)`, KeyDocument, KeyDarkMode); err != nil {
		return fmt.Errorf("store: clear: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
