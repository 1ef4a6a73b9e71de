package bindings

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Cache memoizes which stable ids have already been loaded into a catalog
// across repeated compiler invocations against the same assembly set,
// backed by a small SQLite database (grounded on
// mcgru-funxy/internal/evaluator/builtins_sql.go's database/sql +
// modernc.org/sqlite pairing). It exists because re-parsing and
// re-validating a large bindings.json on every invocation of a driver like
// cmd/tsonic is wasted work once an assembly's manifest hash hasn't
// changed; the cache only ever needs to answer "have I already loaded
// stable id X from assembly hash H," never anything richer, so it is a
// single table.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (creating if necessary) a SQLite-backed cache at path.
// Passing ":memory:" is valid and is what tests use.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("bindings: open cache: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS loaded_stable_ids (
	assembly_hash TEXT NOT NULL,
	stable_id     TEXT NOT NULL,
	clr_name      TEXT NOT NULL,
	PRIMARY KEY (assembly_hash, stable_id)
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bindings: create cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }

// AlreadyLoaded reports whether stableId was previously recorded as loaded
// from the assembly identified by assemblyHash (typically a content hash of
// its bindings.json).
func (c *Cache) AlreadyLoaded(assemblyHash, stableId string) (bool, error) {
	row := c.db.QueryRow(`SELECT 1 FROM loaded_stable_ids WHERE assembly_hash = ? AND stable_id = ?`, assemblyHash, stableId)
	var dummy int
	switch err := row.Scan(&dummy); err {
	case nil:
		return true, nil
	case sql.ErrNoRows:
		return false, nil
	default:
		return false, err
	}
}

// MarkLoaded idempotently records that stableId has been loaded from the
// given assembly. Loading a manifest is itself idempotent per compilation
// (spec.md §4.2): calling MarkLoaded twice for the same pair is a no-op.
func (c *Cache) MarkLoaded(assemblyHash, stableId, clrName string) error {
	_, err := c.db.Exec(
		`INSERT INTO loaded_stable_ids (assembly_hash, stable_id, clr_name) VALUES (?, ?, ?)
		 ON CONFLICT (assembly_hash, stable_id) DO NOTHING`,
		assemblyHash, stableId, clrName)
	return err
}
