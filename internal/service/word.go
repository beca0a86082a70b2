package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dev-bomo/cuvinte-banatene/internal/models"
	"github.com/dev-bomo/cuvinte-banatene/internal/repository"
)

// ErrNoUpdates signals an update request that carries no fields.
var ErrNoUpdates = errors.New("no fields to update")

// WordCreate carries the fields for a new dictionary entry.
type WordCreate struct {
	Word             string
	Definition       string
	ShortDescription string
	Category         string
	Origin           string
	Examples         models.StringList
	Pronunciation    string
}

// WordUpdate carries a partial update; nil fields are left untouched.
type WordUpdate struct {
	Word             *string
	Definition       *string
	ShortDescription *string
	Category         *string
	Origin           *string
	Examples         *models.StringList
	Pronunciation    *string
}

func (u WordUpdate) empty() bool {
	return u.Word == nil && u.Definition == nil && u.ShortDescription == nil &&
		u.Category == nil && u.Origin == nil && u.Examples == nil && u.Pronunciation == nil
}

// WordService implements dictionary entry management and listing.
type WordService interface {
	Create(ctx context.Context, in WordCreate) (*models.Word, error)
	Get(ctx context.Context, id string) (*models.Word, error)
	List(ctx context.Context, page, limit int, sort string) ([]models.Word, int64, error)
	ListAlphabetical(ctx context.Context) ([]models.Word, error)
	Update(ctx context.Context, id string, in WordUpdate) (*models.Word, error)
	Delete(ctx context.Context, id string) error
}

type wordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new WordService instance.
func NewWordService(wordRepo repository.WordRepository) WordService {
	return &wordService{wordRepo: wordRepo}
}

func (s *wordService) Create(ctx context.Context, in WordCreate) (*models.Word, error) {
	word := &models.Word{
		ID:               uuid.NewString(),
		Word:             in.Word,
		Definition:       in.Definition,
		ShortDescription: in.ShortDescription,
		Category:         in.Category,
		Origin:           in.Origin,
		Examples:         in.Examples,
		Pronunciation:    in.Pronunciation,
	}
	if err := s.wordRepo.Create(ctx, word); err != nil {
		return nil, err
	}
	return s.wordRepo.FindByID(ctx, word.ID)
}

func (s *wordService) Get(ctx context.Context, id string) (*models.Word, error) {
	return s.wordRepo.FindByID(ctx, id)
}

// List returns a 1-indexed page. Out-of-range values fall back to the
// defaults of page 1, limit 10 and alphabetical order.
func (s *wordService) List(ctx context.Context, page, limit int, sort string) ([]models.Word, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if sort != repository.SortCreated {
		sort = repository.SortAlphabetical
	}
	return s.wordRepo.FindPage(ctx, page, limit, sort)
}

func (s *wordService) ListAlphabetical(ctx context.Context) ([]models.Word, error) {
	return s.wordRepo.FindAllAlphabetical(ctx)
}

func (s *wordService) Update(ctx context.Context, id string, in WordUpdate) (*models.Word, error) {
	if in.empty() {
		return nil, ErrNoUpdates
	}

	word, err := s.wordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Word != nil {
		word.Word = *in.Word
	}
	if in.Definition != nil {
		word.Definition = *in.Definition
	}
	if in.ShortDescription != nil {
		word.ShortDescription = *in.ShortDescription
	}
	if in.Category != nil {
		word.Category = *in.Category
	}
	if in.Origin != nil {
		word.Origin = *in.Origin
	}
	if in.Examples != nil {
		word.Examples = *in.Examples
	}
	if in.Pronunciation != nil {
		word.Pronunciation = *in.Pronunciation
	}

	if err := s.wordRepo.Update(ctx, word); err != nil {
		return nil, err
	}
	return s.wordRepo.FindByID(ctx, id)
}

func (s *wordService) Delete(ctx context.Context, id string) error {
	return s.wordRepo.Delete(ctx, id)
}
