package sink

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"ssh-sweep/pkg/model"
)

const schema = `CREATE TABLE IF NOT EXISTS results(
	ts INTEGER NOT NULL,
	host TEXT NOT NULL,
	user TEXT,
	port INTEGER NOT NULL,
	status TEXT NOT NULL,
	message TEXT
); CREATE INDEX IF NOT EXISTS idx_results_host ON results(host);`

// SQLiteSink persists results to a local sqlite database, one row per probe.
// A single connection plus a mutex keeps concurrent workers from
// interleaving inserts.
type SQLiteSink struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLiteSink opens (creating if needed) the database at path and ensures
// the results table exists.
func NewSQLiteSink(path string) (*SQLiteSink, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	db.SetMaxOpenConns(1)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return &SQLiteSink{db: db}, nil
}

// Write inserts one result row.
func (s *SQLiteSink) Write(r model.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results(ts, host, user, port, status, message) VALUES(?,?,?,?,?,?)`,
		r.Timestamp.Unix(), r.Host, r.User, r.Port, string(r.Status), r.Message)
	return err
}

// Close releases the database handle.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
