// Package store provides SQLite-backed persistence for named simulation
// results ("regimes"), so a result can be saved once and reviewed later by
// name.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/gymsim/internal/engine"
)

// DB wraps a SQLite connection for regime storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS regimes (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		config_json TEXT NOT NULL,
		result_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_regimes_created ON regimes(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// RegimeInfo is the listing row for a stored regime.
type RegimeInfo struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// SaveRegime stores a configuration and its result under a name, replacing
// any previous regime with the same name.
func (db *DB) SaveRegime(name string, cfg engine.Config, res *engine.Result) error {
	if name == "" {
		return fmt.Errorf("regime name must not be empty")
	}

	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	resJSON, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = db.conn.Exec(`INSERT INTO regimes (id, name, created_at, config_json, result_json)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			created_at = excluded.created_at,
			config_json = excluded.config_json,
			result_json = excluded.result_json`,
		uuid.NewString(), name, time.Now().UTC().Format(time.RFC3339),
		string(cfgJSON), string(resJSON),
	)
	if err != nil {
		return fmt.Errorf("save regime %q: %w", name, err)
	}
	return nil
}

// LoadRegime retrieves a stored regime by name.
func (db *DB) LoadRegime(name string) (engine.Config, *engine.Result, error) {
	var row struct {
		ConfigJSON string `db:"config_json"`
		ResultJSON string `db:"result_json"`
	}
	err := db.conn.Get(&row,
		"SELECT config_json, result_json FROM regimes WHERE name = ?", name)
	if err != nil {
		return engine.Config{}, nil, fmt.Errorf("load regime %q: %w", name, err)
	}

	var cfg engine.Config
	if err := json.Unmarshal([]byte(row.ConfigJSON), &cfg); err != nil {
		return engine.Config{}, nil, fmt.Errorf("decode config for %q: %w", name, err)
	}
	var res engine.Result
	if err := json.Unmarshal([]byte(row.ResultJSON), &res); err != nil {
		return engine.Config{}, nil, fmt.Errorf("decode result for %q: %w", name, err)
	}
	return cfg, &res, nil
}

// ListRegimes returns all stored regimes, newest first.
func (db *DB) ListRegimes() ([]RegimeInfo, error) {
	var rows []RegimeInfo
	err := db.conn.Select(&rows,
		"SELECT id, name, created_at FROM regimes ORDER BY created_at DESC, name")
	if err != nil {
		return nil, fmt.Errorf("list regimes: %w", err)
	}
	return rows, nil
}

// DeleteRegime removes a stored regime by name.
func (db *DB) DeleteRegime(name string) error {
	result, err := db.conn.Exec("DELETE FROM regimes WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete regime %q: %w", name, err)
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("regime %q not found", name)
	}
	return nil
}
