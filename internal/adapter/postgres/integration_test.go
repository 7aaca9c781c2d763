//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesava/telugu-word-analysis/internal/adapter/postgres"
	"github.com/kesava/telugu-word-analysis/internal/adapter/postgres/snapshot"
	"github.com/kesava/telugu-word-analysis/internal/adapter/postgres/testhelper"
	"github.com/kesava/telugu-word-analysis/internal/adapter/postgres/wordlist"
	"github.com/kesava/telugu-word-analysis/internal/domain"
)

func TestWordListRoundTrip(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := wordlist.New(pool)
	tm := postgres.NewTxManager(pool)
	ctx := context.Background()

	list := &domain.WordList{ID: uuid.New(), Name: "roundtrip-" + uuid.New().String()[:8], Source: "test"}
	words := []string{"అమ్మ", "రాము", "అమ్మ"}

	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		return repo.Create(ctx, list, words)
	})
	require.NoError(t, err)
	assert.False(t, list.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.WordCount)

	stored, err := repo.Words(ctx, list.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, words, stored)

	page, err := repo.Words(ctx, list.ID, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"రాము"}, page)
}

func TestWordListDuplicateName(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := wordlist.New(pool)
	ctx := context.Background()

	seeded := testhelper.SeedWordList(t, pool, "క")

	err := repo.Create(ctx, &domain.WordList{ID: uuid.New(), Name: seeded.Name}, []string{"అ"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRunInTx_RollbackLeavesNoList(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := wordlist.New(pool)
	tm := postgres.NewTxManager(pool)
	ctx := context.Background()

	list := &domain.WordList{ID: uuid.New(), Name: "rollback-" + uuid.New().String()[:8]}
	sentinel := errors.New("analysis failed")

	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		if err := repo.Create(ctx, list, []string{"అ"}); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, err = repo.GetByID(ctx, list.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSnapshotLatest(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := snapshot.New(pool)
	ctx := context.Background()

	list := testhelper.SeedWordList(t, pool, "అమ్మ")
	snap := &domain.StatsSnapshot{
		ID:     uuid.New(),
		ListID: list.ID,
		Stats: &domain.Stats{
			Metadata: domain.Metadata{Version: domain.StatsVersion, TotalWords: 1},
			Basic:    &domain.BasicStats{TotalWords: 1, TotalCharacters: 4},
		},
	}
	require.NoError(t, repo.Create(ctx, snap))

	got, err := repo.LatestForList(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)
	require.NotNil(t, got.Stats.Basic)
	assert.Equal(t, 4, got.Stats.Basic.TotalCharacters)

	_, err = repo.LatestForList(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
