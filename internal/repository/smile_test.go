package repository

import (
	"context"
	"errors"
	"testing"
)

// =============================================================================
// Add / Remove Tests
// =============================================================================

func TestSmileAddAndRemove(t *testing.T) {
	db := setupTestDB(t)
	smiles := NewSmileRepository(db)
	words := NewWordRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "zambitor", true)
	word := createTestWord(t, db, "soare")

	if err := smiles.Add(ctx, user.ID, word.ID); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got, _ := words.FindByID(ctx, word.ID)
	if got.SmileCount != 1 {
		t.Errorf("SmileCount after Add() = %d, want 1", got.SmileCount)
	}

	exists, err := smiles.Exists(ctx, user.ID, word.ID)
	if err != nil || !exists {
		t.Errorf("Exists() = %v, %v, want true, nil", exists, err)
	}

	if err := smiles.Remove(ctx, user.ID, word.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	got, _ = words.FindByID(ctx, word.ID)
	if got.SmileCount != 0 {
		t.Errorf("SmileCount after Remove() = %d, want 0", got.SmileCount)
	}
	exists, _ = smiles.Exists(ctx, user.ID, word.ID)
	if exists {
		t.Error("Exists() = true after Remove()")
	}
}

func TestSmileAddDuplicate(t *testing.T) {
	db := setupTestDB(t)
	smiles := NewSmileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "dublu", true)
	word := createTestWord(t, db, "lume")

	if err := smiles.Add(ctx, user.ID, word.ID); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := smiles.Add(ctx, user.ID, word.ID); !errors.Is(err, ErrDuplicate) {
		t.Errorf("second Add() error = %v, want ErrDuplicate", err)
	}
}

func TestSmileAddMissingWord(t *testing.T) {
	db := setupTestDB(t)
	smiles := NewSmileRepository(db)

	user := createTestUser(t, db, "pierdut", true)

	if err := smiles.Add(context.Background(), user.ID, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Add() for missing word error = %v, want ErrNotFound", err)
	}
}

func TestSmileRemoveWithoutSmile(t *testing.T) {
	db := setupTestDB(t)
	smiles := NewSmileRepository(db)

	user := createTestUser(t, db, "trist", true)
	word := createTestWord(t, db, "ploaie")

	if err := smiles.Remove(context.Background(), user.ID, word.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove() without prior smile error = %v, want ErrNotFound", err)
	}
}

// TestSmileRemoveGuardsAtZero inserts the join row without touching the
// counter, simulating drift; the decrement must not push the counter negative.
func TestSmileRemoveGuardsAtZero(t *testing.T) {
	db := setupTestDB(t)
	smiles := NewSmileRepository(db)
	words := NewWordRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "ghidon", true)
	word := createTestWord(t, db, "drum")

	if err := db.Exec(
		"INSERT INTO user_smiles (id, user_id, word_id, created_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)",
		"smile-1", user.ID, word.ID,
	).Error; err != nil {
		t.Fatalf("Failed to insert join row: %v", err)
	}

	if err := smiles.Remove(ctx, user.ID, word.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	got, _ := words.FindByID(ctx, word.ID)
	if got.SmileCount != 0 {
		t.Errorf("SmileCount = %d, want 0 (decrement must be guarded)", got.SmileCount)
	}
}

// =============================================================================
// WordIDs Tests
// =============================================================================

func TestSmileWordIDs(t *testing.T) {
	db := setupTestDB(t)
	smiles := NewSmileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "colectionar", true)
	first := createTestWord(t, db, "unu")
	second := createTestWord(t, db, "doi")

	if err := smiles.Add(ctx, user.ID, first.ID); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := smiles.Add(ctx, user.ID, second.ID); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	ids, err := smiles.WordIDs(ctx, user.ID)
	if err != nil {
		t.Fatalf("WordIDs() error = %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("WordIDs() returned %d ids, want 2", len(ids))
	}

	other := createTestUser(t, db, "altul", true)
	ids, err = smiles.WordIDs(ctx, other.ID)
	if err != nil {
		t.Fatalf("WordIDs() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("WordIDs() for user without smiles returned %d ids, want 0", len(ids))
	}
}
