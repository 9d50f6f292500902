// Package backup serializes the transaction snapshot to a portable JSON
// document and restores a snapshot from one. The file format is the bare
// JSON array the browser version of the tracker wrote, so old backups
// import cleanly.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/pennywise/internal/model"
)

// Import errors. Both leave the caller's store untouched; Import never
// mutates anything itself.
var (
	// ErrParseFailure means the input was not valid JSON at all.
	ErrParseFailure = errors.New("backup is not valid JSON")
	// ErrShapeMismatch means the input parsed but its top-level value is
	// not an array.
	ErrShapeMismatch = errors.New("backup top-level value is not an array")
)

// Export serializes the snapshot as an indented JSON document.
func Export(txns []model.Transaction) ([]byte, error) {
	if txns == nil {
		txns = []model.Transaction{}
	}
	data, err := json.MarshalIndent(txns, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Filename returns the conventional backup file name for the given day,
// e.g. finance_backup_2024-06-01.json. Purely cosmetic.
func Filename(now time.Time) string {
	return fmt.Sprintf("finance_backup_%s.json", now.Format(model.DateLayout))
}

// Import parses a user-supplied backup. Any JSON array is accepted:
// individual records are decoded leniently, with unknown fields ignored and
// undecodable fields left at their zero values. Per-record validation is
// deliberately not performed here; the import command reports suspicious
// records but still accepts them.
func Import(data []byte) ([]model.Transaction, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: got %s", ErrShapeMismatch, typeErr.Value)
		}
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	if raws == nil {
		// "null" parses but is not an array.
		return nil, fmt.Errorf("%w: got null", ErrShapeMismatch)
	}

	txns := make([]model.Transaction, 0, len(raws))
	for _, raw := range raws {
		var txn model.Transaction
		// Ignore per-record decode errors: whatever fields did decode are
		// kept, matching the original's accept-any-array behavior.
		_ = json.Unmarshal(raw, &txn)
		txns = append(txns, txn)
	}
	return txns, nil
}
