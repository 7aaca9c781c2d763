package corpus

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesava/telugu-word-analysis/internal/domain"
	"github.com/kesava/telugu-word-analysis/internal/lexicon"
	"github.com/kesava/telugu-word-analysis/internal/service/stats"
)

func TestMemoryWordLists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryStore().WordLists()

	_, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	first := &domain.WordList{ID: uuid.New(), Name: "first"}
	second := &domain.WordList{ID: uuid.New(), Name: "second"}
	require.NoError(t, repo.Create(ctx, first, []string{"అ", "ఆ", "ఇ"}))
	require.NoError(t, repo.Create(ctx, second, []string{"క"}))

	err = repo.Create(ctx, &domain.WordList{ID: uuid.New(), Name: "first"}, nil)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Name)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.WordCount)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	page, err := repo.Words(ctx, first.ID, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ఆ"}, page)

	page, err = repo.Words(ctx, first.ID, 0, 5)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestMemorySnapshots(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryStore().Snapshots()

	_, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	snap := &domain.StatsSnapshot{ID: uuid.New(), Stats: &domain.Stats{}}
	require.NoError(t, repo.Create(ctx, snap))
	assert.False(t, snap.CreatedAt.IsZero())

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)
}

func TestService_InMemoryEndToEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := NewMemoryStore()

	svc := NewService(logger, Deps{
		Lists:     store.WordLists(),
		Snapshots: store.Snapshots(),
		Tx:        store,
		Analyzer:  stats.NewAnalyzer(logger, lexicon.Default(), stats.Config{Workers: 2}),
	})

	list, err := svc.ImportWordList(ctx, ImportInput{Name: "demo", Words: []string{"అమ్మ", "రాము", "కలం"}})
	require.NoError(t, err)

	snap, err := svc.Analyze(ctx, list.ID)
	require.NoError(t, err)
	require.NotNil(t, snap.Stats.Basic)
	assert.Equal(t, 3, snap.Stats.Basic.TotalWords)

	latest, err := svc.LatestStats(ctx)
	require.NoError(t, err)
	assert.Same(t, snap.Stats, latest)

	words, err := svc.CandidateWords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"అమ్మ", "రాము", "కలం"}, words)
}
