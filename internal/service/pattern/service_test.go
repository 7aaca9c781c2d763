package pattern

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockSource struct {
	CandidateWordsFunc func(ctx context.Context) ([]string, error)
	calls              int
}

func (m *mockSource) CandidateWords(ctx context.Context) ([]string, error) {
	m.calls++
	return m.CandidateWordsFunc(ctx)
}

func newTestService(src candidateSource) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), src)
}

func wordsSource(words ...string) *mockSource {
	return &mockSource{
		CandidateWordsFunc: func(context.Context) ([]string, error) { return words, nil },
	}
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

func TestSearch_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word string
		mode domain.SearchMode
	}{
		{"empty", "", domain.SearchSimilar},
		{"whitespace", "   ", domain.SearchSimilar},
		{"latin only", "hello", domain.SearchSimilar},
		{"two words", "అమ్మ రాము", domain.SearchSimilar},
		{"unknown mode", "అమ్మ", domain.SearchMode("fuzzy")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestService(wordsSource("అక్క"))
			_, err := svc.Search(context.Background(), tt.word, tt.mode)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSearch_UsesSourceAndExcludesInput(t *testing.T) {
	t.Parallel()

	svc := newTestService(wordsSource("అమ్మ", "ఇమ్మ", "ఇమ్మ", "అక్క"))

	got, err := svc.Search(context.Background(), " అమ్మ ", domain.SearchExact)

	require.NoError(t, err)
	assert.Equal(t, []string{"ఇమ్మ"}, matchedWords(got))
}

func TestSearch_EmptyModeIsSimilar(t *testing.T) {
	t.Parallel()

	svc := newTestService(wordsSource("కాలు", "సీత"))

	got, err := svc.Search(context.Background(), "రాము", "")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Similar Pattern", got[0].MatchType)
}

func TestSearch_FallsBackToExampleWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  candidateSource
	}{
		{"nil source", nil},
		{"empty corpus", wordsSource()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestService(tt.src)
			got, err := svc.Search(context.Background(), "అమ్మ", domain.SearchShape)

			require.NoError(t, err)
			require.NotEmpty(t, got)
			assert.LessOrEqual(t, len(got), MaxResults)
			assert.NotContains(t, matchedWords(got), "అమ్మ")
			for _, w := range matchedWords(got) {
				assert.True(t, slices.Contains(exampleWords, w), w)
			}
		})
	}
}

func TestSearch_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	svc := newTestService(&mockSource{
		CandidateWordsFunc: func(context.Context) ([]string, error) { return nil, boom },
	})

	_, err := svc.Search(context.Background(), "అమ్మ", domain.SearchSimilar)

	assert.ErrorIs(t, err, boom)
}

func TestSearch_CachesUntilInvalidated(t *testing.T) {
	t.Parallel()

	src := wordsSource("ఇమ్మ")
	svc := newTestService(src)
	ctx := context.Background()

	_, err := svc.Search(ctx, "అమ్మ", domain.SearchExact)
	require.NoError(t, err)
	_, err = svc.Search(ctx, "అక్క", domain.SearchExact)
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)

	svc.Invalidate()

	_, err = svc.Search(ctx, "అమ్మ", domain.SearchExact)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestCandidates_InvalidateDuringLoad(t *testing.T) {
	t.Parallel()

	loading := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	words := []string{"ఇమ్మ"}
	first := true

	src := &mockSource{
		CandidateWordsFunc: func(context.Context) ([]string, error) {
			mu.Lock()
			out := slices.Clone(words)
			block := first
			first = false
			mu.Unlock()
			if block {
				close(loading)
				<-release
			}
			return out, nil
		},
	}
	svc := newTestService(src)
	ctx := context.Background()

	done := make(chan []domain.WordPattern)
	go func() {
		got, err := svc.candidates(ctx)
		assert.NoError(t, err)
		done <- got
	}()

	<-loading
	mu.Lock()
	words = []string{"ఇమ్మ", "అక్క"}
	mu.Unlock()
	svc.Invalidate()
	close(release)

	assert.Len(t, <-done, 1)

	got, err := svc.candidates(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_Describe(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)

	p, err := svc.Describe("లక్ష్మీ")
	require.NoError(t, err)
	assert.Equal(t, []string{"ల", "క్ష్మీ"}, p.Syllables)
	assert.Len(t, p.Othu, 2)

	_, err = svc.Describe("")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExampleWords_ReturnsCopy(t *testing.T) {
	t.Parallel()

	words := ExampleWords()
	words[0] = "x"

	assert.NotEqual(t, "x", exampleWords[0])
}
