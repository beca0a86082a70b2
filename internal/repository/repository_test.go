package repository

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dev-bomo/cuvinte-banatene/internal/models"
)

// =============================================================================
// Test Helpers
// =============================================================================

func setupTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func createTestWord(t *testing.T, db *gorm.DB, text string) *models.Word {
	t.Helper()

	word := &models.Word{
		ID:               uuid.NewString(),
		Word:             text,
		Definition:       "definition of " + text,
		ShortDescription: "short " + text,
	}
	if err := db.Create(word).Error; err != nil {
		t.Fatalf("Failed to create test word: %v", err)
	}
	return word
}

func createTestUser(t *testing.T, db *gorm.DB, username string, verified bool) *models.User {
	t.Helper()

	user := &models.User{
		ID:            uuid.NewString(),
		Username:      username,
		Email:         username + "@example.com",
		PasswordHash:  "x",
		Role:          models.RoleContributor,
		EmailVerified: verified,
	}
	if !verified {
		token := "token-" + username
		user.EmailVerificationToken = &token
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}
