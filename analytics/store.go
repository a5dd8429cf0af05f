// Package analytics is a privacy-light pageview counter backed by SQLite.
// It stores daily per-path counts, nothing per-visitor: no cookies, no user
// agents, no raw IPs. A sliding-window limiter keeps reloads from the same
// address from inflating the numbers.
package analytics

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// dedupWindow is how long repeat views of the same path from the same
// address are ignored.
const dedupWindow = 30 * time.Minute

// Store provides database operations for pageview analytics.
type Store struct {
	db      *sql.DB
	limiter *rateLimiter
}

// NewStore opens (or creates) the analytics database at path, ensures the
// data directory exists, and runs schema setup.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// WAL so beacon writes don't block stats reads; busy_timeout so
	// concurrent writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	s := &Store{
		db:      db,
		limiter: newRateLimiter(1, dedupWindow),
	}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close stops the limiter's cleanup goroutine and closes the database.
func (s *Store) Close() error {
	s.limiter.stop()
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS pageviews (
    path TEXT NOT NULL,
    day TEXT NOT NULL,
    count INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (path, day)
);
CREATE INDEX IF NOT EXISTS idx_pageviews_day ON pageviews(day);
`)
	return err
}

// Record counts one view of path for today.
func (s *Store) Record(path string) error {
	day := time.Now().UTC().Format("2006-01-02")
	_, err := s.db.Exec(`INSERT INTO pageviews (path, day, count) VALUES (?, ?, 1)
		ON CONFLICT(path, day) DO UPDATE SET count = count + 1`, path, day)
	return err
}

// RecordOnce counts one view of path, ignoring repeat views of the same path
// from the same address within the dedup window.
func (s *Store) RecordOnce(addr, path string) error {
	if !s.limiter.allow(addr + " " + path) {
		return nil
	}
	return s.Record(path)
}

// Totals returns the all-time view count per path.
func (s *Store) Totals() (map[string]int64, error) {
	rows, err := s.db.Query(`SELECT path, SUM(count) FROM pageviews GROUP BY path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int64)
	for rows.Next() {
		var path string
		var count int64
		if err := rows.Scan(&path, &count); err != nil {
			return nil, err
		}
		totals[path] = count
	}
	return totals, rows.Err()
}

// PathTotal returns the all-time view count for a single path.
func (s *Store) PathTotal(path string) (int64, error) {
	var count sql.NullInt64
	err := s.db.QueryRow(`SELECT SUM(count) FROM pageviews WHERE path = ?`, path).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count.Int64, nil
}

// Prune deletes daily rows older than the given number of days.
func (s *Store) Prune(days int) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")
	_, err := s.db.Exec(`DELETE FROM pageviews WHERE day < ?`, cutoff)
	return err
}
