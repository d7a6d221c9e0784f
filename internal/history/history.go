// Package history stores executed programs in a sqlite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tliron/commonlog"
	_ "modernc.org/sqlite"
)

var log = commonlog.GetLogger("cubit.history")

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Entry is one executed program.
type Entry struct {
	ID       string        `json:"id"`
	Code     string        `json:"code"`
	Output   string        `json:"output"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
	Created  time.Time     `json:"created"`
}

// Store persists entries. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	code        TEXT NOT NULL,
	output      TEXT NOT NULL,
	error       TEXT NOT NULL,
	duration_ns INTEGER NOT NULL,
	created_ns  INTEGER NOT NULL
)`

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// every connection to :memory: is a separate database
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}

	log.Infof("history database: %s", path)
	return &Store{db: db, path: path}, nil
}

// Path is the database location passed to Open.
func (s *Store) Path() string {
	return s.path
}

// Record inserts e. A zero Created is set to the current time.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.Created.IsZero() {
		e.Created = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, code, output, error, duration_ns, created_ns) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Code, e.Output, e.Error, int64(e.Duration), e.Created.UnixNano())
	if err != nil {
		log.Errorf("recording run %s: %s", e.ID, err)
		return fmt.Errorf("recording run %s: %w", e.ID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return []Entry{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, code, output, error, duration_ns, created_ns FROM runs ORDER BY created_ns DESC, rowid DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e                 Entry
			duration, created int64
		)
		if err := rows.Scan(&e.ID, &e.Code, &e.Output, &e.Error, &duration, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		e.Duration = time.Duration(duration)
		e.Created = time.Unix(0, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count is the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting runs: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
