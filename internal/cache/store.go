package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// FileName is the database file name inside the cache directory.
const FileName = "cache.db"

// Store caches response bodies keyed by resource kind and name.
type Store struct {
	db     *sql.DB
	dbPath string

	// now returns the current time. Tests replace it.
	now func() time.Time
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file if needed.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// ErrNotExist is returned by Open when the database does not exist and
// CreateIfNotExists is false.
var ErrNotExist = errors.New("cache database does not exist")

// Open opens or creates the cache database in dir.
func Open(dir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dir, FileName)

	var dsn string
	if opts.CreateIfNotExists {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
		dsn = dbPath + "?mode=rwc"
	} else {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check cache path: %w", err)
		}
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db, dbPath: dbPath, now: time.Now}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// createTables creates the schema if it does not exist.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS responses (
		kind TEXT NOT NULL,
		name TEXT NOT NULL,
		body BLOB NOT NULL,
		fetched_at INTEGER NOT NULL,
		PRIMARY KEY (kind, name)
	);

	CREATE INDEX IF NOT EXISTS idx_responses_fetched_at ON responses(fetched_at);
	`
	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Get returns the body stored for kind/name. Entries older than maxAge are
// treated as missing; maxAge <= 0 disables expiry.
func (s *Store) Get(ctx context.Context, kind, name string, maxAge time.Duration) ([]byte, bool, error) {
	query := `SELECT body, fetched_at FROM responses WHERE kind = ? AND name = ?`

	var body []byte
	var fetchedAt int64
	err := s.db.QueryRowContext(ctx, query, kind, name).Scan(&body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if maxAge > 0 && s.now().Sub(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, false, nil
	}
	return body, true, nil
}

// Put stores body for kind/name, replacing any previous entry.
func (s *Store) Put(ctx context.Context, kind, name string, body []byte) error {
	query := `
	INSERT INTO responses (kind, name, body, fetched_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(kind, name) DO UPDATE SET
		body = excluded.body,
		fetched_at = excluded.fetched_at
	`
	if _, err := s.db.ExecContext(ctx, query, kind, name, body, s.now().Unix()); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Clear deletes every entry and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM responses`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cache: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared entries: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `VACUUM`); err != nil {
		return n, fmt.Errorf("failed to compact cache: %w", err)
	}
	return n, nil
}

// Prune deletes entries older than maxAge and returns how many were removed.
func (s *Store) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := s.now().Add(-maxAge).Unix()
	result, err := s.db.ExecContext(ctx, `DELETE FROM responses WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune cache: %w", err)
	}
	return result.RowsAffected()
}

// Stats summarizes the cache contents.
type Stats struct {
	// Entries is the total number of cached responses.
	Entries int64
	// ByKind counts entries per resource kind.
	ByKind map[string]int64
	// Bytes is the total size of the cached bodies.
	Bytes int64
	// Oldest is the fetch time of the oldest entry; zero when empty.
	Oldest time.Time
}

// Stats returns a summary of the cache contents.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{ByKind: make(map[string]int64)}

	var oldest sql.NullInt64
	var bytes sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), SUM(LENGTH(body)), MIN(fetched_at) FROM responses`,
	).Scan(&st.Entries, &bytes, &oldest)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache stats: %w", err)
	}
	st.Bytes = bytes.Int64
	if oldest.Valid {
		st.Oldest = time.Unix(oldest.Int64, 0)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM responses GROUP BY kind ORDER BY kind`)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var count int64
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("failed to scan cache stats: %w", err)
		}
		st.ByKind[kind] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cache stats: %w", err)
	}
	return st, nil
}
