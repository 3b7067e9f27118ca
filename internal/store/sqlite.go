package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const DatabaseFile = "folio.db"

// SQLiteBackend stores every key as one row of the kv table.
type SQLiteBackend struct {
	conn *sql.DB
}

// NewSQLiteBackend opens (and if needed creates) folio.db under dataDir.
func NewSQLiteBackend(dataDir string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return OpenSQLite(filepath.Join(dataDir, DatabaseFile))
}

// OpenSQLite opens a database at dsn, which may be a file path or ":memory:".
func OpenSQLite(dsn string) (*SQLiteBackend, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}
	// one connection so ":memory:" databases are shared and writes serialise
	conn.SetMaxOpenConns(1)

	if err := initTables(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize database tables: %w", err)
	}
	return &SQLiteBackend{conn: conn}, nil
}

func initTables(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at TEXT NOT NULL
		);
	`)
	return err
}

func (b *SQLiteBackend) Get(key string) ([]byte, error) {
	var value []byte
	err := b.conn.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

func (b *SQLiteBackend) Put(key string, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	_, err := b.conn.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, data, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (b *SQLiteBackend) Close() error {
	return b.conn.Close()
}
