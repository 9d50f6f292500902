package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/pennywise/internal/model"
)

// Helper function to create a migrated test store.
func createTestStore(t *testing.T) (*SQLiteStore, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func testDraft(description string, amount float64) model.Transaction {
	return model.Transaction{
		Date:        "2024-06-01",
		Description: description,
		Amount:      amount,
		Type:        model.TypeExpense,
		Category:    model.CategoryFood,
	}
}

func TestSQLiteStore_Add(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	created, err := store.Add(ctx, testDraft("Coffee", 4.50))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if created.ID == "" {
		t.Error("Expected a generated id")
	}

	second, err := store.Add(ctx, testDraft("Lunch", 12))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if second.ID == created.ID {
		t.Errorf("Expected distinct ids, both were %s", created.ID)
	}

	txns, err := store.Transactions(ctx)
	if err != nil {
		t.Fatalf("Transactions failed: %v", err)
	}
	if len(txns) != 2 {
		t.Errorf("Expected 2 transactions, got %d", len(txns))
	}
}

func TestSQLiteStore_Add_RejectsInvalidDraft(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		mutate func(*model.Transaction)
		name   string
	}{
		{name: "empty description", mutate: func(d *model.Transaction) { d.Description = "" }},
		{name: "zero amount", mutate: func(d *model.Transaction) { d.Amount = 0 }},
		{name: "bad type", mutate: func(d *model.Transaction) { d.Type = "REFUND" }},
		{name: "bad date", mutate: func(d *model.Transaction) { d.Date = "June 1st" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := testDraft("Coffee", 4.50)
			tt.mutate(&draft)
			if _, err := store.Add(ctx, draft); err == nil {
				t.Error("Expected validation error")
			}
		})
	}

	txns, err := store.Transactions(ctx)
	if err != nil {
		t.Fatalf("Transactions failed: %v", err)
	}
	if len(txns) != 0 {
		t.Errorf("Expected rejected drafts to leave the snapshot empty, got %d", len(txns))
	}
}

func TestSQLiteStore_Delete(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	created, err := store.Add(ctx, testDraft("Coffee", 4.50))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := store.Add(ctx, testDraft("Lunch", 12)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	txns, err := store.Transactions(ctx)
	if err != nil {
		t.Fatalf("Transactions failed: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("Expected 1 transaction after delete, got %d", len(txns))
	}
	if txns[0].ID == created.ID {
		t.Error("Deleted transaction still present")
	}

	// Deleting a nonexistent id is a no-op, not an error.
	if err := store.Delete(ctx, "no-such-id"); err != nil {
		t.Errorf("Delete of unknown id should be a no-op, got %v", err)
	}
	txns, _ = store.Transactions(ctx)
	if len(txns) != 1 {
		t.Errorf("Expected snapshot size unchanged, got %d", len(txns))
	}
}

func TestSQLiteStore_ReplaceAll(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := store.Add(ctx, testDraft("Old", 1)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	replacement := []model.Transaction{
		{ID: "r1", Date: "2024-02-01", Description: "New", Amount: 2, Type: model.TypeIncome, Category: model.CategorySalary},
	}
	if err := store.ReplaceAll(ctx, replacement); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	txns, err := store.Transactions(ctx)
	if err != nil {
		t.Fatalf("Transactions failed: %v", err)
	}
	if len(txns) != 1 || txns[0].ID != "r1" {
		t.Errorf("Expected replacement snapshot, got %+v", txns)
	}

	// Replacing with an empty snapshot is allowed; nil is not.
	if err := store.ReplaceAll(ctx, []model.Transaction{}); err != nil {
		t.Errorf("ReplaceAll with empty slice failed: %v", err)
	}
	if err := store.ReplaceAll(ctx, nil); err == nil {
		t.Error("Expected ReplaceAll(nil) to fail")
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	created, err := store.Add(ctx, testDraft("Durable", 9.99))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer func() { _ = reopened.Close() }()
	if err := reopened.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate reopened store: %v", err)
	}

	txns, err := reopened.Transactions(ctx)
	if err != nil {
		t.Fatalf("Transactions failed: %v", err)
	}
	if len(txns) != 1 || txns[0].ID != created.ID {
		t.Errorf("Expected persisted transaction %s, got %+v", created.ID, txns)
	}
}

func TestSQLiteStore_CorruptSnapshotFailsSoft(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	// Simulate an incompatible stored shape.
	if err := store.setValue(ctx, snapshotKey, `{"not": "an array"}`); err != nil {
		t.Fatalf("setValue failed: %v", err)
	}

	txns, err := store.Transactions(ctx)
	if err != nil {
		t.Fatalf("Expected fail-soft read, got error: %v", err)
	}
	if len(txns) != 0 {
		t.Errorf("Expected empty snapshot, got %d records", len(txns))
	}

	// The store stays usable: a new add starts a fresh snapshot.
	if _, err := store.Add(ctx, testDraft("Fresh start", 1)); err != nil {
		t.Fatalf("Add after corrupt read failed: %v", err)
	}
}

func TestSQLiteStore_Locale(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	tag, err := store.Locale(ctx)
	if err != nil {
		t.Fatalf("Locale failed: %v", err)
	}
	if tag != DefaultLocale {
		t.Errorf("Expected default locale %q, got %q", DefaultLocale, tag)
	}

	if err := store.SetLocale(ctx, "en"); err != nil {
		t.Fatalf("SetLocale failed: %v", err)
	}
	tag, err = store.Locale(ctx)
	if err != nil {
		t.Fatalf("Locale failed: %v", err)
	}
	if tag != "en" {
		t.Errorf("Expected locale en, got %q", tag)
	}

	if err := store.SetLocale(ctx, "  "); err == nil {
		t.Error("Expected SetLocale to reject a blank tag")
	}
}
