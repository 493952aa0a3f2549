// Package storage persists buildings, rooms, and assets in a local SQLite file.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	// dirPermissions is the mode used when creating the store's parent directory.
	dirPermissions = 0o750

	// busyTimeoutMS bounds how long a write waits on another process's lock.
	busyTimeoutMS = 5000
)

// DB wraps a SQLite database connection.
type DB struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// Option configures a DB.
type Option func(*DB)

// WithLogger sets the logger used for debug output. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(d *DB) {
		if l != nil {
			d.logger = l
		}
	}
}

// OpenDB opens or creates the store at path and ensures the schema exists.
// The parent directory is created if missing.
func OpenDB(ctx context.Context, path string, opts ...Option) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	dsn, err := storeDSN(path)
	if err != nil {
		return nil, err
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	d := &DB{db: sqlDB, path: path, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.EnsureSchema(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}

	d.logger.Debug("opened store", zap.String("path", path))
	return d, nil
}

// storeDSN builds a file: URI for path. The path is escaped so that
// characters like '?' and '#' stay part of the file name.
func storeDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving store path: %w", err)
	}
	abs = filepath.ToSlash(abs)
	if !strings.HasPrefix(abs, "/") {
		abs = "/" + abs
	}
	u := url.URL{
		Scheme:   "file",
		Path:     abs,
		RawQuery: fmt.Sprintf("_pragma=busy_timeout(%d)", busyTimeoutMS),
	}
	return u.String(), nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the filesystem path of the store.
func (d *DB) Path() string {
	return d.path
}

// EnsureSchema creates the tables and indexes if they don't exist.
// It is safe to call against a populated store.
func (d *DB) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS buildings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			address TEXT DEFAULT '',
			floors INTEGER DEFAULT 1,
			total_sqft REAL DEFAULT 0,
			building_type TEXT DEFAULT 'office',
			created_at TEXT NOT NULL,
			active INTEGER DEFAULT 1
		);

		CREATE TABLE IF NOT EXISTS rooms (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			building_id INTEGER NOT NULL REFERENCES buildings(id),
			name TEXT NOT NULL,
			floor INTEGER DEFAULT 1,
			capacity INTEGER DEFAULT 10,
			room_type TEXT DEFAULT 'office',
			status TEXT DEFAULT 'available',
			created_at TEXT NOT NULL
		);

		-- foreign_keys stays off, so room_id is not enforced
		CREATE TABLE IF NOT EXISTS assets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			room_id INTEGER NOT NULL REFERENCES rooms(id),
			name TEXT NOT NULL,
			asset_type TEXT DEFAULT 'equipment',
			serial_number TEXT DEFAULT '',
			purchase_date TEXT DEFAULT '',
			condition TEXT DEFAULT 'good',
			last_inspected TEXT DEFAULT '',
			notes TEXT DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_rooms_building ON rooms(building_id);
		CREATE INDEX IF NOT EXISTS idx_assets_room ON assets(room_id);
	`

	if _, err := d.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	d.logger.Debug("schema ensured")
	return nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
// The primary-code branch covers connections without extended result codes.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	if se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE")
}

// countRows runs a COUNT(*) query and returns the result.
func (d *DB) countRows(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := d.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
