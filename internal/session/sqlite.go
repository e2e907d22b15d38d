package session

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists the session in a SQLite database inside the user's
// data directory, so a login survives process restarts.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens the session database under dataDir. Pass empty string
// for an in-memory database.
func NewSQLiteStore(dataDir string) (*SQLiteStore, error) {
	var dsn string
	if dataDir == "" {
		dsn = ":memory:?_journal_mode=WAL"
	} else {
		if err := os.MkdirAll(dataDir, 0700); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		dsn = filepath.Join(dataDir, "carectl.db") + "?_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate session database: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	migrations := []string{
		// Single-row table: id is fixed to 1 so Set is always an upsert.
		`CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			base_url TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Token returns the current bearer token, or "" when no session exists.
func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	sess, err := s.Get(ctx)
	if err == ErrNoSession {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return sess.Token, nil
}

// Get returns the persisted session, or ErrNoSession.
func (s *SQLiteStore) Get(ctx context.Context) (*Session, error) {
	var sess Session
	if err := s.db.GetContext(ctx, &sess,
		"SELECT token, email, base_url, created_at FROM session WHERE id = 1"); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &sess, nil
}

// Set replaces the persisted session.
func (s *SQLiteStore) Set(ctx context.Context, sess Session) error {
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now().UTC()
	}

	const q = `INSERT INTO session (id, token, email, base_url, created_at)
		VALUES (1, :token, :email, :base_url, :created_at)
		ON CONFLICT (id) DO UPDATE SET
			token = excluded.token,
			email = excluded.email,
			base_url = excluded.base_url,
			created_at = excluded.created_at`

	if _, err := s.db.NamedExecContext(ctx, q, sess); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an empty store is a no-op.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE id = 1"); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
