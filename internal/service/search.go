package service

import (
	"context"
	"sort"
	"strings"

	"github.com/dev-bomo/cuvinte-banatene/internal/models"
	"github.com/dev-bomo/cuvinte-banatene/internal/repository"
)

// Static relevance scores, highest priority first.
const (
	scoreExactWord       = 100
	scoreWordPrefix      = 80
	scoreWordSubstring   = 60
	scoreDefinition      = 40
	scoreShortDesc       = 20
)

// SearchResult pairs a matched word with its relevance score.
type SearchResult struct {
	Word           models.Word `json:"word"`
	RelevanceScore int         `json:"relevanceScore"`
}

// SearchService ranks dictionary entries against a free-text query.
type SearchService interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

type searchService struct {
	wordRepo repository.WordRepository
}

// NewSearchService creates a new SearchService instance.
func NewSearchService(wordRepo repository.WordRepository) SearchService {
	return &searchService{wordRepo: wordRepo}
}

// Search matches the query case-insensitively against the word, its
// definition and its short description, then orders results by a static
// priority: exact word match, word prefix, word substring, definition
// substring, short-description substring. Equal scores keep the
// repository's alphabetical order.
func (s *searchService) Search(ctx context.Context, query string) ([]SearchResult, error) {
	words, err := s.wordRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, len(words))
	for i, word := range words {
		results[i] = SearchResult{
			Word:           word,
			RelevanceScore: Score(word, query),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	return results, nil
}

// Score computes the static relevance of a word for the query. A word that
// matches in no scored field scores 0.
func Score(word models.Word, query string) int {
	q := strings.ToLower(query)
	w := strings.ToLower(word.Word)

	switch {
	case w == q:
		return scoreExactWord
	case strings.HasPrefix(w, q):
		return scoreWordPrefix
	case strings.Contains(w, q):
		return scoreWordSubstring
	case strings.Contains(strings.ToLower(word.Definition), q):
		return scoreDefinition
	case strings.Contains(strings.ToLower(word.ShortDescription), q):
		return scoreShortDesc
	}
	return 0
}
