package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/dev-bomo/cuvinte-banatene/internal/models"
)

// Sort orders accepted by FindPage.
const (
	SortAlphabetical = "alphabetical"
	SortCreated      = "created"
)

// WordRepository defines the interface for word data operations.
type WordRepository interface {
	Create(ctx context.Context, word *models.Word) error
	FindByID(ctx context.Context, id string) (*models.Word, error)
	FindPage(ctx context.Context, page, limit int, sort string) ([]models.Word, int64, error)
	FindAllAlphabetical(ctx context.Context) ([]models.Word, error)
	Search(ctx context.Context, query string) ([]models.Word, error)
	Update(ctx context.Context, word *models.Word) error
	Delete(ctx context.Context, id string) error
	IncrementSmileCount(ctx context.Context, id string) error
}

type wordRepository struct {
	db *gorm.DB
}

// NewWordRepository creates a new WordRepository instance.
func NewWordRepository(db *gorm.DB) WordRepository {
	return &wordRepository{db: db}
}

func (r *wordRepository) Create(ctx context.Context, word *models.Word) error {
	if err := r.db.WithContext(ctx).Create(word).Error; err != nil {
		return fmt.Errorf("failed to create word: %w", translate(err))
	}
	return nil
}

func (r *wordRepository) FindByID(ctx context.Context, id string) (*models.Word, error) {
	var word models.Word
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&word).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find word %s: %w", id, translate(err))
	}
	return &word, nil
}

// FindPage returns one 1-indexed page of words plus the total row count.
func (r *wordRepository) FindPage(ctx context.Context, page, limit int, sort string) ([]models.Word, int64, error) {
	orderBy := "word ASC"
	if sort == SortCreated {
		orderBy = "created_at DESC"
	}
	offset := (page - 1) * limit

	var words []models.Word
	err := r.db.WithContext(ctx).Order(orderBy).Limit(limit).Offset(offset).Find(&words).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list words: %w", translate(err))
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Word{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count words: %w", translate(err))
	}

	return words, total, nil
}

func (r *wordRepository) FindAllAlphabetical(ctx context.Context) ([]models.Word, error) {
	var words []models.Word
	err := r.db.WithContext(ctx).Order("word ASC").Find(&words).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list words alphabetically: %w", translate(err))
	}
	return words, nil
}

// Search matches the query as a case-insensitive substring of the word, its
// definition or its short description. Results come back in word order;
// relevance ranking happens in the service layer.
func (r *wordRepository) Search(ctx context.Context, query string) ([]models.Word, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var words []models.Word
	err := r.db.WithContext(ctx).
		Where("LOWER(word) LIKE ? OR LOWER(definition) LIKE ? OR LOWER(short_description) LIKE ?",
			pattern, pattern, pattern).
		Order("word ASC").
		Find(&words).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search words: %w", translate(err))
	}
	return words, nil
}

func (r *wordRepository) Update(ctx context.Context, word *models.Word) error {
	if err := r.db.WithContext(ctx).Save(word).Error; err != nil {
		return fmt.Errorf("failed to update word %s: %w", word.ID, translate(err))
	}
	return nil
}

func (r *wordRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Word{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete word %s: %w", id, translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete word %s: %w", id, ErrNotFound)
	}
	return nil
}

// IncrementSmileCount bumps the counter for the anonymous smile path.
func (r *wordRepository) IncrementSmileCount(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.Word{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"smile_count": gorm.Expr("smile_count + 1"),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to increment smile count for word %s: %w", id, translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to increment smile count for word %s: %w", id, ErrNotFound)
	}
	return nil
}
