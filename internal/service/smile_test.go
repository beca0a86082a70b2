package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dev-bomo/cuvinte-banatene/internal/models"
	"github.com/dev-bomo/cuvinte-banatene/internal/repository"
)

// =============================================================================
// Test Helpers
// =============================================================================

// setupSmileService wires the smile service over real repositories on an
// in-memory database; the counter arithmetic is the point of these tests.
func setupSmileService(t *testing.T) (SmileService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Word{}, &models.UserSmile{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return NewSmileService(repository.NewWordRepository(db), repository.NewSmileRepository(db)), db
}

func insertWord(t *testing.T, db *gorm.DB, text string) *models.Word {
	t.Helper()
	word := &models.Word{ID: uuid.NewString(), Word: text, Definition: "d", ShortDescription: "s"}
	if err := db.Create(word).Error; err != nil {
		t.Fatalf("Failed to insert word: %v", err)
	}
	return word
}

func insertUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         models.RoleContributor,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}
	return user
}

// =============================================================================
// Counter Arithmetic Tests
// =============================================================================

// TestSmileCountArithmetic checks that N anonymous smiles plus M distinct
// authenticated smiles leave the counter at exactly N+M.
func TestSmileCountArithmetic(t *testing.T) {
	service, db := setupSmileService(t)
	ctx := context.Background()

	word := insertWord(t, db, "soare")

	const anonymous = 4
	var count int
	var err error
	for i := 0; i < anonymous; i++ {
		count, err = service.Smile(ctx, word.ID)
		if err != nil {
			t.Fatalf("Smile() error = %v", err)
		}
	}
	if count != anonymous {
		t.Errorf("count after %d anonymous smiles = %d", anonymous, count)
	}

	users := []*models.User{
		insertUser(t, db, "ana"),
		insertUser(t, db, "ion"),
		insertUser(t, db, "maria"),
	}
	for _, user := range users {
		count, err = service.SmileAsUser(ctx, user.ID, word.ID)
		if err != nil {
			t.Fatalf("SmileAsUser() error = %v", err)
		}
	}
	if want := anonymous + len(users); count != want {
		t.Errorf("count = %d, want %d", count, want)
	}
}

func TestSmileAnonymousHasNoDuplicateProtection(t *testing.T) {
	service, db := setupSmileService(t)
	ctx := context.Background()

	word := insertWord(t, db, "lume")

	var count int
	var err error
	for i := 0; i < 2; i++ {
		count, err = service.Smile(ctx, word.ID)
		if err != nil {
			t.Fatalf("Smile() error = %v", err)
		}
	}
	if count != 2 {
		t.Errorf("count = %d, want 2 (anonymous smiles are unguarded)", count)
	}
}

func TestSmileAsUserRejectsSecondSmile(t *testing.T) {
	service, db := setupSmileService(t)
	ctx := context.Background()

	word := insertWord(t, db, "dor")
	user := insertUser(t, db, "ana")

	if _, err := service.SmileAsUser(ctx, user.ID, word.ID); err != nil {
		t.Fatalf("SmileAsUser() error = %v", err)
	}
	if _, err := service.SmileAsUser(ctx, user.ID, word.ID); !errors.Is(err, ErrAlreadySmiled) {
		t.Errorf("second SmileAsUser() error = %v, want ErrAlreadySmiled", err)
	}

	// Un-smile re-opens the word for the user.
	if _, err := service.Unsmile(ctx, user.ID, word.ID); err != nil {
		t.Fatalf("Unsmile() error = %v", err)
	}
	if _, err := service.SmileAsUser(ctx, user.ID, word.ID); err != nil {
		t.Errorf("SmileAsUser() after un-smile error = %v", err)
	}
}

func TestUnsmileWithoutSmile(t *testing.T) {
	service, db := setupSmileService(t)

	word := insertWord(t, db, "ploaie")
	user := insertUser(t, db, "ana")

	if _, err := service.Unsmile(context.Background(), user.ID, word.ID); !errors.Is(err, ErrNotSmiled) {
		t.Errorf("Unsmile() error = %v, want ErrNotSmiled", err)
	}
}

func TestSmileMissingWord(t *testing.T) {
	service, db := setupSmileService(t)
	user := insertUser(t, db, "ana")

	if _, err := service.Smile(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Smile() error = %v, want ErrNotFound", err)
	}
	if _, err := service.SmileAsUser(context.Background(), user.ID, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("SmileAsUser() error = %v, want ErrNotFound", err)
	}
}

func TestSmiledWordIDs(t *testing.T) {
	service, db := setupSmileService(t)
	ctx := context.Background()

	user := insertUser(t, db, "ana")
	first := insertWord(t, db, "unu")
	second := insertWord(t, db, "doi")

	for _, word := range []*models.Word{first, second} {
		if _, err := service.SmileAsUser(ctx, user.ID, word.ID); err != nil {
			t.Fatalf("SmileAsUser() error = %v", err)
		}
	}

	ids, err := service.SmiledWordIDs(ctx, user.ID)
	if err != nil {
		t.Fatalf("SmiledWordIDs() error = %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("SmiledWordIDs() returned %d ids, want 2", len(ids))
	}
}
