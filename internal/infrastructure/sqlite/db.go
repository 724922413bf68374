// Package sqlite provides the SQLite-backed catalog repositories. The
// driver is ncruces/go-sqlite3 (wazero build, no cgo); schema versioning
// runs through golang-migrate with migrations embedded in the binary.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/vitrine/internal/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB owns the SQLite connection and hands out repositories bound to it.
type DB struct {
	conn *sql.DB
	path string
}

// NewDB opens (creating if necessary) the catalog database at path, applies
// pragmas, and runs any pending migrations. The parent directory is created
// with 0700. An existing database file is copied to path+".bak" before
// migrations touch it.
func NewDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := backupFile(path, path+".bak"); err != nil {
			return nil, fmt.Errorf("failed to back up database before migration: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	db := &DB{conn: conn, path: path}
	if err := db.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	log.Debug(log.CatDB, "database opened", "path", path)
	return db, nil
}

// migrate applies pending schema migrations from the embedded filesystem.
func (d *DB) migrate() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	driver, err := newMigrationDriver(d.conn)
	if err != nil {
		return fmt.Errorf("failed to prepare migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "vitrine", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// backupFile copies src to dst, truncating any previous backup.
func backupFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // G304: src is the configured database path
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600) //nolint:gosec // G304: dst derives from the database path
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	_, err = io.Copy(out, in)
	return err
}

// ProductRepository returns the product repository bound to this database.
func (d *DB) ProductRepository() *ProductRepository {
	return newProductRepository(d.conn)
}

// ImageRepository returns the image repository bound to this database.
func (d *DB) ImageRepository() *ImageRepository {
	return newImageRepository(d.conn)
}

// OrderRepository returns the order repository bound to this database.
func (d *DB) OrderRepository() *OrderRepository {
	return newOrderRepository(d.conn)
}

// UserRepository returns the user repository bound to this database.
func (d *DB) UserRepository() *UserRepository {
	return newUserRepository(d.conn)
}

// Connection exposes the underlying *sql.DB for callers that need raw
// access, such as the seed command.
func (d *DB) Connection() *sql.DB {
	return d.conn
}

// Path returns the database file path, which the watcher observes.
func (d *DB) Path() string {
	return d.path
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.conn.Close()
}
