package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Veraticus/pennywise/internal/model"
)

// getValue reads one keyed value. The second return is false when the key
// has never been written.
func (s *SQLiteStore) getValue(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

// setValue writes one keyed value, creating or replacing the row.
func (s *SQLiteStore) setValue(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// loadSnapshot rehydrates the transaction snapshot. A missing row or a
// stored value that does not decode as a JSON array is treated as an empty
// snapshot rather than an error, so an incompatible database never takes
// the application down.
func (s *SQLiteStore) loadSnapshot(ctx context.Context) ([]model.Transaction, error) {
	value, ok, err := s.getValue(ctx, snapshotKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var txns []model.Transaction
	if err := json.Unmarshal([]byte(value), &txns); err != nil {
		slog.Warn("Stored snapshot is unreadable, treating as empty",
			"key", snapshotKey,
			"error", err)
		return nil, nil
	}
	return txns, nil
}

// saveSnapshot persists the full snapshot synchronously.
func (s *SQLiteStore) saveSnapshot(ctx context.Context, txns []model.Transaction) error {
	if txns == nil {
		txns = []model.Transaction{}
	}
	data, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return s.setValue(ctx, snapshotKey, string(data))
}

// Add assigns a fresh unique identifier to the draft, appends it to the
// snapshot, persists, and returns the created record.
func (s *SQLiteStore) Add(ctx context.Context, draft model.Transaction) (model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return model.Transaction{}, err
	}
	if err := draft.Validate(); err != nil {
		return model.Transaction{}, fmt.Errorf("invalid transaction: %w", err)
	}

	txns, err := s.loadSnapshot(ctx)
	if err != nil {
		return model.Transaction{}, err
	}

	draft.ID = uuid.NewString()
	txns = append(txns, draft)

	if err := s.saveSnapshot(ctx, txns); err != nil {
		return model.Transaction{}, err
	}
	return draft, nil
}

// Delete removes the record with the given identifier. Deleting an absent
// identifier is a no-op, not an error.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	txns, err := s.loadSnapshot(ctx)
	if err != nil {
		return err
	}

	kept := txns[:0]
	for _, txn := range txns {
		if txn.ID != id {
			kept = append(kept, txn)
		}
	}
	if len(kept) == len(txns) {
		return nil
	}
	return s.saveSnapshot(ctx, kept)
}

// ReplaceAll discards the current snapshot and persists the given one
// wholesale. Used by the import path; record contents are trusted as-is.
func (s *SQLiteStore) ReplaceAll(ctx context.Context, txns []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if txns == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	return s.saveSnapshot(ctx, txns)
}

// Transactions returns the current snapshot. The returned slice is the
// caller's to keep; later store mutations do not alias it.
func (s *SQLiteStore) Transactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.loadSnapshot(ctx)
}
