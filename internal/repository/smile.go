package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dev-bomo/cuvinte-banatene/internal/models"
)

// SmileRepository defines the interface for authenticated smile operations.
type SmileRepository interface {
	Add(ctx context.Context, userID, wordID string) error
	Remove(ctx context.Context, userID, wordID string) error
	Exists(ctx context.Context, userID, wordID string) (bool, error)
	WordIDs(ctx context.Context, userID string) ([]string, error)
}

type smileRepository struct {
	db *gorm.DB
}

// NewSmileRepository creates a new SmileRepository instance.
func NewSmileRepository(db *gorm.DB) SmileRepository {
	return &smileRepository{db: db}
}

// Add inserts the join row and increments the word counter in one transaction
// so a failure cannot leave the two out of step.
func (r *smileRepository) Add(ctx context.Context, userID, wordID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Word{}).
			Where("id = ?", wordID).
			Updates(map[string]interface{}{
				"smile_count": gorm.Expr("smile_count + 1"),
				"updated_at":  time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		smile := models.UserSmile{
			ID:     uuid.NewString(),
			UserID: userID,
			WordID: wordID,
		}
		return tx.Create(&smile).Error
	})
	if err != nil {
		return fmt.Errorf("failed to add smile for word %s: %w", wordID, translate(err))
	}
	return nil
}

// Remove deletes the join row and decrements the word counter in one
// transaction. The decrement is guarded so the counter never goes negative.
func (r *smileRepository) Remove(ctx context.Context, userID, wordID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND word_id = ?", userID, wordID).
			Delete(&models.UserSmile{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return tx.Model(&models.Word{}).
			Where("id = ? AND smile_count > 0", wordID).
			Updates(map[string]interface{}{
				"smile_count": gorm.Expr("smile_count - 1"),
				"updated_at":  time.Now(),
			}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to remove smile for word %s: %w", wordID, translate(err))
	}
	return nil
}

func (r *smileRepository) Exists(ctx context.Context, userID, wordID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserSmile{}).
		Where("user_id = ? AND word_id = ?", userID, wordID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check smile for word %s: %w", wordID, translate(err))
	}
	return count > 0, nil
}

// WordIDs returns the ids of the words the user smiled at, newest first.
func (r *smileRepository) WordIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.UserSmile{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("word_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list smiles for user %s: %w", userID, translate(err))
	}
	return ids, nil
}
