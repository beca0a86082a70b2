package service

import (
	"context"
	"errors"

	"github.com/dev-bomo/cuvinte-banatene/internal/repository"
)

var (
	// ErrAlreadySmiled signals a second smile on the same word without an
	// intervening un-smile.
	ErrAlreadySmiled = errors.New("already smiled at this word")
	// ErrNotSmiled signals an un-smile for a word the user never smiled at.
	ErrNotSmiled = errors.New("no smile to remove for this word")
)

// SmileService implements the anonymous and authenticated smile paths over a
// shared per-word counter.
type SmileService interface {
	Smile(ctx context.Context, wordID string) (int, error)
	SmileAsUser(ctx context.Context, userID, wordID string) (int, error)
	Unsmile(ctx context.Context, userID, wordID string) (int, error)
	SmiledWordIDs(ctx context.Context, userID string) ([]string, error)
}

type smileService struct {
	wordRepo  repository.WordRepository
	smileRepo repository.SmileRepository
}

// NewSmileService creates a new SmileService instance.
func NewSmileService(wordRepo repository.WordRepository, smileRepo repository.SmileRepository) SmileService {
	return &smileService{wordRepo: wordRepo, smileRepo: smileRepo}
}

// Smile records an anonymous smile. Duplicate protection for this path lives
// client-side only; the server increments unconditionally.
func (s *smileService) Smile(ctx context.Context, wordID string) (int, error) {
	if err := s.wordRepo.IncrementSmileCount(ctx, wordID); err != nil {
		return 0, err
	}
	word, err := s.wordRepo.FindByID(ctx, wordID)
	if err != nil {
		return 0, err
	}
	return word.SmileCount, nil
}

// SmileAsUser records an authenticated smile, at most one per (user, word).
func (s *smileService) SmileAsUser(ctx context.Context, userID, wordID string) (int, error) {
	if _, err := s.wordRepo.FindByID(ctx, wordID); err != nil {
		return 0, err
	}

	smiled, err := s.smileRepo.Exists(ctx, userID, wordID)
	if err != nil {
		return 0, err
	}
	if smiled {
		return 0, ErrAlreadySmiled
	}

	if err := s.smileRepo.Add(ctx, userID, wordID); err != nil {
		return 0, err
	}

	word, err := s.wordRepo.FindByID(ctx, wordID)
	if err != nil {
		return 0, err
	}
	return word.SmileCount, nil
}

// Unsmile reverses an authenticated smile.
func (s *smileService) Unsmile(ctx context.Context, userID, wordID string) (int, error) {
	smiled, err := s.smileRepo.Exists(ctx, userID, wordID)
	if err != nil {
		return 0, err
	}
	if !smiled {
		return 0, ErrNotSmiled
	}

	if err := s.smileRepo.Remove(ctx, userID, wordID); err != nil {
		return 0, err
	}

	word, err := s.wordRepo.FindByID(ctx, wordID)
	if err != nil {
		return 0, err
	}
	return word.SmileCount, nil
}

func (s *smileService) SmiledWordIDs(ctx context.Context, userID string) ([]string, error) {
	return s.smileRepo.WordIDs(ctx, userID)
}
