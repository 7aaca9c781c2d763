package snapshot

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

func newTestRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func sampleStats() *domain.Stats {
	return &domain.Stats{
		Metadata: domain.Metadata{Version: domain.StatsVersion, TotalWords: 2},
		Basic:    &domain.BasicStats{TotalWords: 2, TotalCharacters: 7},
	}
}

func TestRepo_Create(t *testing.T) {
	t.Parallel()

	repo, mock := newTestRepo(t)
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	snap := &domain.StatsSnapshot{ID: uuid.New(), ListID: uuid.New(), Stats: sampleStats()}
	doc, err := json.Marshal(snap.Stats)
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO stats_snapshots \(id,list_id,stats\) VALUES \(\$1,\$2,\$3\) RETURNING created_at`).
		WithArgs(snap.ID, snap.ListID, doc).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	require.NoError(t, repo.Create(context.Background(), snap))
	assert.Equal(t, now, snap.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Create_UnknownList(t *testing.T) {
	t.Parallel()

	repo, mock := newTestRepo(t)
	snap := &domain.StatsSnapshot{ID: uuid.New(), ListID: uuid.New(), Stats: sampleStats()}

	mock.ExpectQuery(`INSERT INTO stats_snapshots`).
		WithArgs(snap.ID, snap.ListID, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), snap)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Latest(t *testing.T) {
	t.Parallel()

	repo, mock := newTestRepo(t)
	id, listID := uuid.New(), uuid.New()
	doc, err := json.Marshal(sampleStats())
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT id, list_id, stats, created_at FROM stats_snapshots ORDER BY created_at DESC, id LIMIT 1`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "list_id", "stats", "created_at"}).
			AddRow(id, listID, doc, time.Now()))

	got, err := repo.Latest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, listID, got.ListID)
	require.NotNil(t, got.Stats.Basic)
	assert.Equal(t, 7, got.Stats.Basic.TotalCharacters)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Latest_None(t *testing.T) {
	t.Parallel()

	repo, mock := newTestRepo(t)
	mock.ExpectQuery(`SELECT .* FROM stats_snapshots`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "list_id", "stats", "created_at"}))

	_, err := repo.Latest(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_LatestForList(t *testing.T) {
	t.Parallel()

	repo, mock := newTestRepo(t)
	listID := uuid.New()
	doc, err := json.Marshal(sampleStats())
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT .* FROM stats_snapshots WHERE list_id = \$1 ORDER BY created_at DESC, id LIMIT 1`).
		WithArgs(listID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "list_id", "stats", "created_at"}).
			AddRow(uuid.New(), listID, doc, time.Now()))

	got, err := repo.LatestForList(context.Background(), listID)

	require.NoError(t, err)
	assert.Equal(t, listID, got.ListID)
}

func TestRepo_Latest_CorruptDocument(t *testing.T) {
	t.Parallel()

	repo, mock := newTestRepo(t)
	mock.ExpectQuery(`SELECT .* FROM stats_snapshots`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "list_id", "stats", "created_at"}).
			AddRow(uuid.New(), uuid.New(), []byte("{"), time.Now()))

	_, err := repo.Latest(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode snapshot")
}
