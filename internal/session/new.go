package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

type implStore struct {
	db    *sql.DB
	now   func() time.Time
	newID func() string

	mu   sync.Mutex
	last int64
}

// Open opens (creating if needed) the session database at path using the
// named database/sql driver: "sqlite" (modernc) or "sqlite3" (mattn).
func Open(ctx context.Context, driver, path string) (Store, error) {
	return open(ctx, driver, path, time.Now, uuid.NewString)
}

func open(ctx context.Context, driver, path string, now func() time.Time, newID func() string) (*implStore, error) {
	if driver == "" {
		driver = "sqlite"
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, storageErr("open", fmt.Errorf("open database: %w", err))
	}

	// One connection serializes writers and keeps ":memory:" databases alive.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, storageErr("open", fmt.Errorf("ping database: %w", err))
	}

	s := &implStore{db: db, now: now, newID: newID}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, storageErr("migrate", err)
	}

	return s, nil
}

func (s *implStore) migrate(ctx context.Context) error {
	migrations := []string{
		`PRAGMA journal_mode = WAL`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			transcript TEXT NOT NULL,
			summary_json TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC)`,
	}

	for _, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	var last sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(created_at) FROM sessions`).Scan(&last); err != nil {
		return fmt.Errorf("read latest timestamp: %w", err)
	}
	s.last = last.Int64

	return nil
}

// Close closes the database connection.
func (s *implStore) Close() error {
	return s.db.Close()
}
