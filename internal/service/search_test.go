package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dev-bomo/cuvinte-banatene/internal/models"
)

// =============================================================================
// Mock WordRepository
// =============================================================================

type mockWordRepository struct {
	createFunc              func(ctx context.Context, word *models.Word) error
	findByIDFunc            func(ctx context.Context, id string) (*models.Word, error)
	findPageFunc            func(ctx context.Context, page, limit int, sort string) ([]models.Word, int64, error)
	findAllAlphabeticalFunc func(ctx context.Context) ([]models.Word, error)
	searchFunc              func(ctx context.Context, query string) ([]models.Word, error)
	updateFunc              func(ctx context.Context, word *models.Word) error
	deleteFunc              func(ctx context.Context, id string) error
	incrementSmileCountFunc func(ctx context.Context, id string) error
}

func (m *mockWordRepository) Create(ctx context.Context, word *models.Word) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, word)
	}
	return errors.New("not implemented")
}

func (m *mockWordRepository) FindByID(ctx context.Context, id string) (*models.Word, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockWordRepository) FindPage(ctx context.Context, page, limit int, sort string) ([]models.Word, int64, error) {
	if m.findPageFunc != nil {
		return m.findPageFunc(ctx, page, limit, sort)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockWordRepository) FindAllAlphabetical(ctx context.Context) ([]models.Word, error) {
	if m.findAllAlphabeticalFunc != nil {
		return m.findAllAlphabeticalFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockWordRepository) Search(ctx context.Context, query string) ([]models.Word, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return nil, errors.New("not implemented")
}

func (m *mockWordRepository) Update(ctx context.Context, word *models.Word) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, word)
	}
	return errors.New("not implemented")
}

func (m *mockWordRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockWordRepository) IncrementSmileCount(ctx context.Context, id string) error {
	if m.incrementSmileCountFunc != nil {
		return m.incrementSmileCountFunc(ctx, id)
	}
	return errors.New("not implemented")
}

// =============================================================================
// Score Tests
// =============================================================================

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		word  models.Word
		query string
		want  int
	}{
		{
			name:  "exact word match",
			word:  models.Word{Word: "mare", Definition: "d", ShortDescription: "s"},
			query: "mare",
			want:  100,
		},
		{
			name:  "exact match is case-insensitive",
			word:  models.Word{Word: "Mare", Definition: "d", ShortDescription: "s"},
			query: "mARE",
			want:  100,
		},
		{
			name:  "word prefix match",
			word:  models.Word{Word: "mare", Definition: "d", ShortDescription: "s"},
			query: "mar",
			want:  80,
		},
		{
			name:  "word substring match",
			word:  models.Word{Word: "amarui", Definition: "d", ShortDescription: "s"},
			query: "mar",
			want:  60,
		},
		{
			name:  "definition substring match",
			word:  models.Word{Word: "ocean", Definition: "intindere mare de apa", ShortDescription: "s"},
			query: "mar",
			want:  40,
		},
		{
			name:  "short description substring match",
			word:  models.Word{Word: "lac", Definition: "apa statatoare", ShortDescription: "apa mare"},
			query: "mar",
			want:  20,
		},
		{
			name:  "no match",
			word:  models.Word{Word: "casa", Definition: "cladire", ShortDescription: "locuinta"},
			query: "mar",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.word, tt.query); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

// =============================================================================
// Search Tests
// =============================================================================

// TestSearchRanking covers the ordering contract: a prefix match on the word
// field outranks any definition-only match.
func TestSearchRanking(t *testing.T) {
	corpus := []models.Word{
		// Alphabetical, as the repository returns them.
		{ID: "1", Word: "borcan", Definition: "vas in care pui marmelada", ShortDescription: "vas"},
		{ID: "2", Word: "mamă", Definition: "femeie care a nascut un copil", ShortDescription: "are grija de copii mari"},
		{ID: "3", Word: "mare", Definition: "intindere de apa sarata", ShortDescription: "apa"},
	}
	repo := &mockWordRepository{
		searchFunc: func(_ context.Context, _ string) ([]models.Word, error) {
			return corpus, nil
		},
	}
	service := NewSearchService(repo)

	results, err := service.Search(context.Background(), "mar")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Search() returned %d results, want 3", len(results))
	}

	if results[0].Word.Word != "mare" || results[0].RelevanceScore != 80 {
		t.Errorf("top result = %q (%d), want \"mare\" (80)", results[0].Word.Word, results[0].RelevanceScore)
	}
	for _, r := range results[1:] {
		if r.RelevanceScore >= results[0].RelevanceScore {
			t.Errorf("result %q score %d should rank below the prefix match", r.Word.Word, r.RelevanceScore)
		}
	}
}

func TestSearchStableTies(t *testing.T) {
	corpus := []models.Word{
		{ID: "1", Word: "alfa", Definition: "ceva cu mar in definitie", ShortDescription: "s"},
		{ID: "2", Word: "beta", Definition: "alt mar in definitie", ShortDescription: "s"},
	}
	repo := &mockWordRepository{
		searchFunc: func(_ context.Context, _ string) ([]models.Word, error) {
			return corpus, nil
		},
	}
	service := NewSearchService(repo)

	results, err := service.Search(context.Background(), "mar")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if results[0].Word.ID != "1" || results[1].Word.ID != "2" {
		t.Error("equal scores must keep the repository's alphabetical order")
	}
}

func TestSearchRepositoryError(t *testing.T) {
	repo := &mockWordRepository{
		searchFunc: func(_ context.Context, _ string) ([]models.Word, error) {
			return nil, errors.New("db down")
		},
	}
	service := NewSearchService(repo)

	if _, err := service.Search(context.Background(), "mar"); err == nil {
		t.Error("Search() expected error when the repository fails")
	}
}
