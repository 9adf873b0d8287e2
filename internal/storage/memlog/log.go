package memlog

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/floos/floos/internal/domain"
)

//go:embed schema.sql
var schemaFS embed.FS

const schemaVersion = 1

// Log is the append-only memory item store, backed by its own SQLite
// database, independent of the key-value documents. Items are immutable
// once written: the log inserts and full-scan reads, nothing else.
type Log struct {
	path string
	now  func() time.Time

	mu sync.Mutex
	db *sql.DB
}

// New creates a log for the database at path. The connection is established
// lazily on first use. now may be nil (defaults to time.Now).
func New(path string, now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}
	return &Log{path: path, now: now}
}

// open returns the cached connection, establishing it on first use. The
// mutex guarantees a single in-flight open; a failed open is not cached, so
// a later call retries, and Close allows reopening on demand.
func (l *Log) open(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db, nil
	}
	if l.path == "" {
		return nil, fmt.Errorf("memory db path is required")
	}

	db, err := sql.Open("sqlite", l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open memory db: %w", err)
	}
	if err := applySchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	l.db = db
	return db, nil
}

// applySchema runs the versioned upgrade step exactly once per database:
// past user_version 1 it is a no-op.
func applySchema(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}

	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}
	return nil
}

// Save inserts item and returns the stored record only after the
// transaction has committed. The insert alone is not enough: the substrate
// can still abort between a successful exec and the commit.
func (l *Log) Save(ctx context.Context, item domain.MemoryItem) (domain.MemoryItem, error) {
	db, err := l.open(ctx)
	if err != nil {
		return domain.MemoryItem{}, err
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = l.now().UnixMilli()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return domain.MemoryItem{}, fmt.Errorf("failed to begin save: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO memory_items (id, type, content, created_at) VALUES (?, ?, ?, ?)",
		item.ID, item.Type, item.Content, item.CreatedAt,
	); err != nil {
		_ = tx.Rollback()
		return domain.MemoryItem{}, fmt.Errorf("failed to insert memory item: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return domain.MemoryItem{}, fmt.Errorf("failed to commit memory item: %w", err)
	}

	return item, nil
}

// All returns every stored item in primary-key order. Chronological order
// is the caller's concern (sort by CreatedAt).
func (l *Log) All(ctx context.Context) ([]domain.MemoryItem, error) {
	db, err := l.open(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin read: %w", err)
	}

	rows, err := tx.QueryContext(ctx,
		"SELECT id, type, content, created_at FROM memory_items ORDER BY id")
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to read memory items: %w", err)
	}

	items := make([]domain.MemoryItem, 0)
	for rows.Next() {
		var item domain.MemoryItem
		if err := rows.Scan(&item.ID, &item.Type, &item.Content, &item.CreatedAt); err != nil {
			_ = rows.Close()
			_ = tx.Rollback()
			return nil, fmt.Errorf("failed to scan memory item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to read memory items: %w", err)
	}
	if err := rows.Close(); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to read memory items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to finish read: %w", err)
	}
	return items, nil
}

// Ping verifies the database is reachable, opening it if needed.
func (l *Log) Ping(ctx context.Context) error {
	db, err := l.open(ctx)
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

// Close releases the cached connection. A later call reopens on demand.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}
