// Package database provides SQLite-backed storage for AutoDNS.
//
// The database stores:
//   - Zone settings (address, domain, option switches) edited through the API
//   - Generation history: every rendered artifact set and whether it was applied
//
// The schema is managed with golang-migrate from embedded SQL files.
package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// DB wraps a SQLite database connection with thread-safe operations.
type DB struct {
	conn *sql.DB
	mu   sync.RWMutex // Serializes writes
}

// Open opens or creates a SQLite database at the given path and migrates it
// to the latest schema version.
func Open(path string) (*DB, error) {
	// Use WAL mode for better concurrency
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", path)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(time.Hour)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return db, nil
}

// migrate applies all pending up migrations.
func (db *DB) migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	defer src.Close()

	drv, err := migratesqlite.WithInstance(db.conn, &migratesqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", drv)
	if err != nil {
		return err
	}
	// m.Close would close db.conn through the driver; the source is closed above.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// SchemaVersion returns the applied migration version.
func (db *DB) SchemaVersion() (uint, error) {
	var version uint
	var dirty bool
	err := db.conn.QueryRow("SELECT version, dirty FROM schema_migrations LIMIT 1").Scan(&version, &dirty)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}
	return version, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Health checks database connectivity.
func (db *DB) Health() error {
	return db.conn.Ping()
}
