// Package store provides SQLite-backed caching of raw feed payloads.
//
// One row per feed URL, holding the last fetched body and when it was
// fetched. The cache exists so repeated digest runs inside the TTL
// window don't re-hit every endpoint; losing it costs nothing but a
// network round trip.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultTTL is how long a cached feed body stays fresh.
const DefaultTTL = time.Hour

// Cache handles SQLite persistence of raw feed bodies. NOT an
// interface - concrete type. Safe for concurrent use via internal
// mutex.
type Cache struct {
	db *sql.DB
	mu sync.Mutex
}

// DefaultPath returns the on-disk cache location under the user's
// home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".newsbrief", "cache.db")
}

// Open creates a Cache at dbPath, creating the schema and parent
// directory if needed. Pass ":memory:" for an in-memory cache (tests).
func Open(dbPath string) (*Cache, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same DB.
		connStr = "file::memory:?cache=shared"
	} else {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping cache: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	c := &Cache{db: db}
	if err := c.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return c, nil
}

func (c *Cache) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS feeds (
		url        TEXT PRIMARY KEY,
		body       BLOB NOT NULL,
		fetched_at INTEGER NOT NULL
	);`
	_, err := c.db.Exec(schema)
	return err
}

// Get returns the cached body for url if it was fetched within maxAge.
// A stale or missing entry returns (nil, false).
func (c *Cache) Get(url string, maxAge time.Duration) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var body []byte
	var fetchedAt int64
	err := c.db.QueryRow(
		"SELECT body, fetched_at FROM feeds WHERE url = ?", url,
	).Scan(&body, &fetchedAt)
	if err != nil {
		// sql.ErrNoRows and real errors alike mean "no usable entry".
		return nil, false
	}

	if time.Since(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, false
	}
	return body, true
}

// Put upserts the body for url with the current time.
func (c *Cache) Put(url string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(`
		INSERT INTO feeds (url, body, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		url, body, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache put %s: %w", url, err)
	}
	return nil
}

// Prune deletes entries older than maxAge. Returns rows removed.
func (c *Cache) Prune(maxAge time.Duration) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now().Add(-maxAge).Unix()
	res, err := c.db.Exec("DELETE FROM feeds WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("cache prune: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
