package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dev-bomo/cuvinte-banatene/internal/models"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindUnverifiedByToken(ctx context.Context, token string) (*models.User, error)
	FindUnverifiedByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	MarkVerified(ctx context.Context, id string) error
	SetVerificationToken(ctx context.Context, id, token string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", translate(err))
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", id, translate(err))
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user by username %s: %w", username, translate(err))
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", translate(err))
	}
	return users, nil
}

func (r *userRepository) FindUnverifiedByToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("email_verification_token = ? AND email_verified = ?", token, false).
		First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user by verification token: %w", translate(err))
	}
	return &user, nil
}

func (r *userRepository) FindUnverifiedByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND email_verified = ?", email, false).
		First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find unverified user by email %s: %w", email, translate(err))
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, translate(err))
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete user %s: %w", id, ErrNotFound)
	}
	return nil
}

// MarkVerified flips the verified flag and clears the token in one update,
// keeping the token-only-while-unverified invariant.
func (r *userRepository) MarkVerified(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"email_verified":           true,
			"email_verification_token": nil,
			"updated_at":               time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark user %s verified: %w", id, translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to mark user %s verified: %w", id, ErrNotFound)
	}
	return nil
}

// SetVerificationToken overwrites the stored token, invalidating any prior one.
func (r *userRepository) SetVerificationToken(ctx context.Context, id, token string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"email_verification_token": token,
			"updated_at":               time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to set verification token for user %s: %w", id, translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to set verification token for user %s: %w", id, ErrNotFound)
	}
	return nil
}
