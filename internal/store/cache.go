// Package store caches the last successfully fetched payload in a local
// SQLite database so the board can still render from stale data when the
// remote endpoint is unreachable. Board state itself is never persisted;
// only the inbound payload is.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/anshpatel080/kanban/internal/source"
)

// ErrNoCachedPayload is returned by LoadPayload when nothing has been
// cached yet.
var ErrNoCachedPayload = errors.New("no cached payload")

// PayloadCache stores the most recent raw payload in a local SQLite
// database.
type PayloadCache struct {
	db *sqlx.DB
}

// NewPayloadCache opens (or creates) a SQLite database at dbPath, enables
// WAL mode, and runs any pending schema migrations.
func NewPayloadCache(dbPath string) (*PayloadCache, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	c := &PayloadCache{db: db}
	if err := c.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return c, nil
}

// Close closes the underlying database connection.
func (c *PayloadCache) Close() error {
	return c.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (c *PayloadCache) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := c.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = c.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := c.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// SavePayload replaces the cached payload with the given one.
func (c *PayloadCache) SavePayload(ctx context.Context, p *source.Payload) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	_, err = c.db.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO payload_cache (id, data, fetched_at) VALUES (1, ?, ?)`,
		string(data),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving payload: %w", err)
	}

	return nil
}

// LoadPayload returns the cached payload and the time it was fetched.
// Returns ErrNoCachedPayload when the cache is empty.
func (c *PayloadCache) LoadPayload(ctx context.Context) (*source.Payload, time.Time, error) {
	var row struct {
		Data      string    `db:"data"`
		FetchedAt time.Time `db:"fetched_at"`
	}

	err := c.db.GetContext(
		ctx,
		&row,
		"SELECT data, fetched_at FROM payload_cache WHERE id = 1",
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrNoCachedPayload
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("loading payload: %w", err)
	}

	var payload source.Payload
	if err := json.Unmarshal([]byte(row.Data), &payload); err != nil {
		return nil, time.Time{}, fmt.Errorf("unmarshaling cached payload: %w", err)
	}

	return &payload, row.FetchedAt, nil
}
