// Package astcache stores encoded quill trees in SQLite, keyed by their
// asthash content digest. The compiler front end uses it to skip
// re-parsing modules whose trees are already cached.
package astcache

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/quill-lang/quill/ast"
	"github.com/quill-lang/quill/ast/asthash"
	"github.com/quill-lang/quill/astwire"
)

// ErrNotFound indicates no tree is cached under the requested digest.
var ErrNotFound = errors.New("astcache: tree not found")

// Cache is a content-addressed store of encoded trees.
type Cache struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens or creates a cache database at the given path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("astcache: opening database: %w", err)
	}

	// Busy timeout for concurrent access.
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("astcache: setting busy timeout: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS trees (
		digest TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		created_at INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("astcache: creating table: %w", err)
	}

	return &Cache{db: db}, nil
}

// Put encodes a tree, stores it under its content digest, and returns the
// digest. Storing an already-cached tree is a no-op.
func (c *Cache) Put(node ast.Node) (string, error) {
	digest := asthash.HexSum(node)
	data, err := astwire.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("astcache: encoding tree: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err = c.db.Exec(
		"INSERT OR IGNORE INTO trees (digest, data, created_at) VALUES (?, ?, ?)",
		digest, data, time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("astcache: storing tree %s: %w", digest, err)
	}
	return digest, nil
}

// Get decodes the tree cached under the given digest.
func (c *Cache) Get(digest string) (ast.Node, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var data []byte
	err := c.db.QueryRow("SELECT data FROM trees WHERE digest = ?", digest).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("astcache: loading tree %s: %w", digest, err)
	}

	node, err := astwire.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("astcache: decoding tree %s: %w", digest, err)
	}
	return node, nil
}

// Has reports whether a tree is cached under the given digest.
func (c *Cache) Has(digest string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var one int
	err := c.db.QueryRow("SELECT 1 FROM trees WHERE digest = ?", digest).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("astcache: checking tree %s: %w", digest, err)
	}
	return true, nil
}

// Delete removes the tree cached under the given digest, if present.
func (c *Cache) Delete(digest string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.db.Exec("DELETE FROM trees WHERE digest = ?", digest); err != nil {
		return fmt.Errorf("astcache: deleting tree %s: %w", digest, err)
	}
	return nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
