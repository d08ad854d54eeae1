// Package store provides a SQLite-backed key-value store for the app's
// persisted collections. Values are stored as JSON text.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is a key-value store backed by a single SQLite file.
type Store struct {
	db *sql.DB
}

// Entry is one key/value pair for SaveMany.
type Entry struct {
	Key   string
	Value any
}

// Open opens or creates the database at the given path and brings its
// contents up to SchemaVersion.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw JSON stored under key.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

// Save JSON-encodes v under key, replacing any previous value.
func (s *Store) Save(key string, v any) error {
	return s.SaveMany(Entry{Key: key, Value: v})
}

// SaveMany writes every entry in one transaction.
func (s *Store) SaveMany(entries ...Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, e := range entries {
		data, err := json.Marshal(e.Value)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", e.Key, err)
		}
		_, err = tx.Exec(`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			e.Key, string(data), now)
		if err != nil {
			return fmt.Errorf("writing %s: %w", e.Key, err)
		}
	}
	return tx.Commit()
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// Keys lists the stored keys in sorted order.
func (s *Store) Keys() ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Version returns the recorded schema version, 0 if none.
func (s *Store) Version() (int, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", metaSchemaVersion).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, nil
	}
	return v, nil
}

func (s *Store) setVersion(v int) error {
	_, err := s.db.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		metaSchemaVersion, strconv.Itoa(v))
	return err
}

// Getter is the read side of a key-value store.
type Getter interface {
	Get(key string) ([]byte, bool, error)
}

// Load decodes the value under key into a T. An absent key, a read error
// or malformed JSON all yield def; Load never fails.
func Load[T any](g Getter, key string, def T) T {
	data, ok, err := g.Get(key)
	if err != nil || !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return def
	}
	return v
}
