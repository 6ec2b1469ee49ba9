package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"wordkingdom/internal/database"
)

// KVRepository implements the storage.KV interface over the kv_entries
// table, using the dialect layer for placeholder and upsert differences.
type KVRepository struct {
	db *database.DB
}

// NewKVRepository creates a new key-value repository
func NewKVRepository(db *database.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get retrieves a value by key. A missing key returns ok=false, not an error.
func (r *KVRepository) Get(key string) (string, bool, error) {
	var value string
	query := "SELECT entry_value FROM kv_entries WHERE entry_key = ?"
	err := r.db.QueryRow(query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read entry %s: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or updates a value
func (r *KVRepository) Set(key, value string) error {
	query := r.db.Dialect.UpsertEntryQuery()
	if _, err := r.db.DB.Exec(r.db.Dialect.RewriteQuery(query), key, value); err != nil {
		return fmt.Errorf("failed to write entry %s: %w", key, err)
	}
	return nil
}

// Entry is one exported key-value row, used by the backup tool
type Entry struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updatedAt"`
}

// List returns all entries ordered by key
func (r *KVRepository) List() ([]Entry, error) {
	rows, err := r.db.Query("SELECT entry_key, entry_value, updated_at FROM kv_entries ORDER BY entry_key")
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Key, &e.Value, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes every entry. Used by the backup tool before an import.
func (r *KVRepository) Clear() error {
	_, err := r.db.Exec("DELETE FROM kv_entries")
	return err
}
