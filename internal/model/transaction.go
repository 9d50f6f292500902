// Package model defines the core domain types shared across the application.
package model

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for transaction dates (ISO 8601 date).
const DateLayout = "2006-01-02"

// TransactionType indicates the direction of money movement.
type TransactionType string

const (
	// TypeIncome marks money coming in.
	TypeIncome TransactionType = "INCOME"
	// TypeExpense marks money going out.
	TypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether the type is one of the known directions.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single income or expense record.
// The JSON shape matches the backup file format, so exported snapshots
// round-trip through Import unchanged.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
}

// Validation errors.
var (
	ErrMissingDescription = errors.New("description is required")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrInvalidDate        = errors.New("invalid date")
)

// Validate checks that the transaction is well-formed enough to record.
// The ID is not checked; it is assigned by the store at creation time.
func (t *Transaction) Validate() error {
	if t.Description == "" {
		return ErrMissingDescription
	}
	if t.Amount <= 0 {
		return fmt.Errorf("%w, got %.2f", ErrInvalidAmount, t.Amount)
	}
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, t.Type)
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidDate, t.Date)
	}
	return nil
}

// Month returns the YYYY-MM prefix of the transaction date, the grouping
// key used by the monthly aggregation.
func (t *Transaction) Month() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}
