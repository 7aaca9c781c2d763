// Package pattern finds words whose gunintam (vowel sign) and othu
// (conjunct) layout resembles a given word.
package pattern

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/kesava/telugu-word-analysis/internal/akshara"
	"github.com/kesava/telugu-word-analysis/internal/domain"
)

// MaxResults caps the number of matches a search returns.
const MaxResults = 24

type candidateSource interface {
	CandidateWords(ctx context.Context) ([]string, error)
}

// Service searches a candidate corpus for pattern matches. Candidate
// descriptions are cached until Invalidate is called.
type Service struct {
	log    *slog.Logger
	source candidateSource

	mu     sync.RWMutex
	cached []domain.WordPattern
	gen    uint64
}

// NewService creates a pattern search service. A nil source, or one that
// yields no words, falls back to ExampleWords.
func NewService(logger *slog.Logger, source candidateSource) *Service {
	return &Service{
		log:    logger.With("service", "pattern"),
		source: source,
	}
}

// Describe validates word and returns its pattern description.
func (s *Service) Describe(word string) (domain.WordPattern, error) {
	word, err := validateWord(word)
	if err != nil {
		return domain.WordPattern{}, err
	}
	return Describe(word), nil
}

// Search returns up to MaxResults candidates matching word under mode,
// best first. The word itself is never part of the result.
func (s *Service) Search(ctx context.Context, word string, mode domain.SearchMode) ([]domain.PatternMatch, error) {
	word, err := validateWord(word)
	if err != nil {
		return nil, err
	}
	mode, err = domain.ParseSearchMode(string(mode))
	if err != nil {
		return nil, err
	}

	candidates, err := s.candidates(ctx)
	if err != nil {
		return nil, err
	}

	matches := Match(Describe(word), candidates, mode)

	s.log.DebugContext(ctx, "pattern search",
		slog.String("word", word),
		slog.String("mode", string(mode)),
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(matches)),
	)
	return matches, nil
}

// Invalidate drops cached candidate descriptions; the next search reloads
// them from the source.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.gen++
	s.mu.Unlock()
}

func (s *Service) candidates(ctx context.Context) ([]domain.WordPattern, error) {
	s.mu.RLock()
	cached, gen := s.cached, s.gen
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	words, err := s.loadWords(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(words))
	patterns := make([]domain.WordPattern, 0, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		patterns = append(patterns, Describe(w))
	}

	// An Invalidate during the load means words may be stale; serve them
	// once but do not cache.
	s.mu.Lock()
	if s.gen == gen {
		s.cached = patterns
	}
	s.mu.Unlock()

	return patterns, nil
}

func (s *Service) loadWords(ctx context.Context) ([]string, error) {
	if s.source == nil {
		return exampleWords, nil
	}

	words, err := s.source.CandidateWords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidate words: %w", err)
	}
	if len(words) == 0 {
		s.log.InfoContext(ctx, "no corpus loaded, using example words")
		return exampleWords, nil
	}
	return words, nil
}

// Match scores every candidate against input and returns the best matches.
// Ties are ordered by word.
func Match(input domain.WordPattern, candidates []domain.WordPattern, mode domain.SearchMode) []domain.PatternMatch {
	var out []domain.PatternMatch

	for _, c := range candidates {
		if c.Word == input.Word {
			continue
		}

		var sim float64
		var matchType string
		switch mode {
		case domain.SearchExact:
			if exactMatch(input, c) {
				sim, matchType = 1, "Exact Pattern Match"
			}
		case domain.SearchSimilar:
			if v := positionSimilarity(input, c); v > similarThreshold {
				sim, matchType = v, "Similar Pattern"
			}
		case domain.SearchSyllable:
			if input.Shape.SyllableCount != c.Shape.SyllableCount {
				continue
			}
			if v := syllableSimilarity(input, c); v > syllableThreshold {
				sim, matchType = v, fmt.Sprintf("%d Syllables", c.Shape.SyllableCount)
			}
		case domain.SearchShape:
			if v := shapeSimilarity(input.Shape, c.Shape); v > shapeThreshold {
				sim, matchType = v, "Similar Shape"
			}
		}

		if sim > 0 && matchType != "" {
			out = append(out, domain.PatternMatch{
				Word:       c.Word,
				Pattern:    c,
				Similarity: sim,
				MatchType:  matchType,
				Details:    details(input, c, mode),
			})
		}
	}

	slices.SortStableFunc(out, func(a, b domain.PatternMatch) int {
		if a.Similarity != b.Similarity {
			return cmp.Compare(b.Similarity, a.Similarity)
		}
		return cmp.Compare(a.Word, b.Word)
	})

	if len(out) > MaxResults {
		out = out[:MaxResults]
	}
	if out == nil {
		out = []domain.PatternMatch{}
	}
	return out
}

func validateWord(word string) (string, error) {
	word = domain.NormalizeWord(word)
	if word == "" {
		return "", domain.NewValidationError("word", "required")
	}
	if !akshara.ContainsTelugu(word) {
		return "", domain.NewValidationError("word", "must contain Telugu characters")
	}
	if strings.ContainsRune(word, ' ') {
		return "", domain.NewValidationError("word", "must be a single word")
	}
	return word, nil
}
