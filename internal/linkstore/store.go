// Package linkstore persists linked Plaid items (access tokens and their
// institution metadata) in a local SQLite database for the plaidctl CLI.
package linkstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// ErrNotFound indicates no linked item matched the lookup.
var ErrNotFound = errors.New("linked item not found")

// LinkedItem is one saved Plaid connection.
type LinkedItem struct {
	LinkedAt        time.Time
	ItemID          string
	AccessToken     string
	InstitutionID   string
	InstitutionName string
	Alias           string
	Environment     string
}

// Store is a SQLite-backed collection of linked items.
type Store struct {
	db     *sql.DB
	dbPath string
}

const schema = `
CREATE TABLE IF NOT EXISTS linked_items (
	item_id          TEXT PRIMARY KEY,
	access_token     TEXT NOT NULL,
	institution_id   TEXT NOT NULL DEFAULT '',
	institution_name TEXT NOT NULL DEFAULT '',
	alias            TEXT NOT NULL DEFAULT '',
	environment      TEXT NOT NULL,
	linked_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_linked_items_alias ON linked_items(alias);
`

// Open opens (and if necessary creates) the store at dbPath.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or replaces a linked item keyed by its item id.
func (s *Store) Save(ctx context.Context, item LinkedItem) error {
	if item.ItemID == "" {
		return errors.New("item id cannot be empty")
	}
	if item.AccessToken == "" {
		return errors.New("access token cannot be empty")
	}
	if item.Environment == "" {
		return errors.New("environment cannot be empty")
	}

	linkedAt := item.LinkedAt
	if linkedAt.IsZero() {
		linkedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO linked_items (item_id, access_token, institution_id, institution_name, alias, environment, linked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(item_id) DO UPDATE SET
			access_token = excluded.access_token,
			institution_id = excluded.institution_id,
			institution_name = excluded.institution_name,
			alias = excluded.alias,
			environment = excluded.environment`,
		item.ItemID, item.AccessToken, item.InstitutionID, item.InstitutionName, item.Alias, item.Environment, linkedAt)
	if err != nil {
		return fmt.Errorf("failed to save linked item: %w", err)
	}

	return nil
}

// Get looks an item up by alias first, then by item id.
func (s *Store) Get(ctx context.Context, key string) (LinkedItem, error) {
	if key == "" {
		return LinkedItem{}, errors.New("key cannot be empty")
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT item_id, access_token, institution_id, institution_name, alias, environment, linked_at
		FROM linked_items
		WHERE alias = ? OR item_id = ?
		LIMIT 1`, key, key)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return LinkedItem{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return LinkedItem{}, fmt.Errorf("failed to load linked item: %w", err)
	}

	return item, nil
}

// List returns all linked items ordered by link time.
func (s *Store) List(ctx context.Context) ([]LinkedItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT item_id, access_token, institution_id, institution_name, alias, environment, linked_at
		FROM linked_items
		ORDER BY linked_at, item_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []LinkedItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan linked item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate linked items: %w", err)
	}

	return items, nil
}

// Remove deletes a linked item by alias or item id.
func (s *Store) Remove(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM linked_items WHERE alias = ? OR item_id = ?`, key, key)
	if err != nil {
		return fmt.Errorf("failed to remove linked item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check removal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (LinkedItem, error) {
	var item LinkedItem
	err := row.Scan(
		&item.ItemID,
		&item.AccessToken,
		&item.InstitutionID,
		&item.InstitutionName,
		&item.Alias,
		&item.Environment,
		&item.LinkedAt,
	)
	return item, err
}
