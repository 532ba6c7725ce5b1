// Package store persists locations and a great-circle distance cache in a
// single SQLite file.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/katalvlaran/lvroute/location"

	_ "modernc.org/sqlite"
)

const (
	// DefaultDBFileName is the file name used when a directory is given
	// as the database location.
	DefaultDBFileName = "lvroute.db"
	schemaVersion     = 1
)

// ErrClosed is returned by every method after Close.
var ErrClosed = errors.New("store: closed")

// Store is a SQLite-backed location and distance-cache store. It is safe
// for concurrent use.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
	log    *slog.Logger
}

// Open opens (creating if needed) the database at dbPath and brings the
// schema up to date. If dbPath is an existing directory the database is
// DefaultDBFileName inside it.
func Open(dbPath string) (*Store, error) {
	logger := slog.Default().With(slog.String("component", "store"))

	if fi, err := os.Stat(dbPath); err == nil && fi.IsDir() {
		dbPath = filepath.Join(dbPath, DefaultDBFileName)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("store: create database directory: %w", err)
	}

	logger.Debug("opening database", "path", dbPath)
	// Pragmas go in the DSN so every pooled connection gets them.
	db, err := sql.Open("sqlite", dbPath+
		"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dbPath, err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping %s: %w", dbPath, err)
	}

	s := &Store{db: db, dbPath: dbPath, log: logger}
	if err = s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path actually opened.
func (s *Store) Path() string { return s.dbPath }

func (s *Store) initSchema() error {
	var version int
	if err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version); err == nil {
		if version > schemaVersion {
			return fmt.Errorf("store: schema version %d is newer than %d", version, schemaVersion)
		}

		return nil
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	);
	INSERT INTO schema_version (version) VALUES (1);

	CREATE TABLE IF NOT EXISTS locations (
		state TEXT PRIMARY KEY,
		capital TEXT NOT NULL UNIQUE,
		lat REAL NOT NULL,
		lng REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS distance_cache (
		origin_lat REAL NOT NULL,
		origin_lng REAL NOT NULL,
		dest_lat REAL NOT NULL,
		dest_lng REAL NOT NULL,
		distance_km REAL NOT NULL,
		PRIMARY KEY (origin_lat, origin_lng, dest_lat, dest_lng)
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("store: create schema: %w", err)
	}
	s.log.Debug("schema initialized", "version", schemaVersion)

	return nil
}

// Close checkpoints the WAL and closes the database. Further calls are
// no-ops.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	if _, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		s.log.Warn("wal checkpoint failed", "err", err)
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// UpsertLocations inserts records, replacing any stored record with the
// same state name, in one transaction. The batch is validated as by
// location.NewSet first; an invalid batch writes nothing.
func (s *Store) UpsertLocations(ctx context.Context, records []location.Record) error {
	if len(records) == 0 {
		return nil
	}
	if _, err := location.NewSet(records); err != nil {
		return fmt.Errorf("store: upsert: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO locations (state, capital, lat, lng) VALUES (?, ?, ?, ?)
		ON CONFLICT(state) DO UPDATE SET
			capital = excluded.capital, lat = excluded.lat, lng = excluded.lng`)
	if err != nil {
		return fmt.Errorf("store: prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err = stmt.ExecContext(ctx, r.State, r.Capital, r.Latitude, r.Longitude); err != nil {
			return fmt.Errorf("store: upsert %s: %w", r.State, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	s.log.Info("locations upserted", "count", len(records))

	return nil
}

// Locations returns the stored records whose state name matches the SQL
// LIKE pattern, in insertion order. An empty pattern matches every record.
func (s *Store) Locations(ctx context.Context, like string) (location.Set, error) {
	if like == "" {
		like = "%"
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT state, capital, lat, lng FROM locations WHERE state LIKE ? ORDER BY rowid`, like)
	if err != nil {
		return nil, fmt.Errorf("store: query locations: %w", err)
	}
	defer rows.Close()

	var records []location.Record
	for rows.Next() {
		var r location.Record
		if err = rows.Scan(&r.State, &r.Capital, &r.Latitude, &r.Longitude); err != nil {
			return nil, fmt.Errorf("store: scan location: %w", err)
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate locations: %w", err)
	}

	return location.NewSet(records)
}
