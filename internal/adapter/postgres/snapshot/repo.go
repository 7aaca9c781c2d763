// Package snapshot stores analysis results as JSONB documents.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/kesava/telugu-word-analysis/internal/adapter/postgres"
	"github.com/kesava/telugu-word-analysis/internal/domain"
)

const table = "stats_snapshots"

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	columns = []string{"id", "list_id", "stats", "created_at"}
)

// Repo provides stats snapshot persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new snapshot repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	ListID    uuid.UUID `db:"list_id"`
	Stats     []byte    `db:"stats"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() (*domain.StatsSnapshot, error) {
	var st domain.Stats
	if err := json.Unmarshal(r.Stats, &st); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", r.ID, err)
	}
	return &domain.StatsSnapshot{
		ID:        r.ID,
		ListID:    r.ListID,
		Stats:     &st,
		CreatedAt: r.CreatedAt,
	}, nil
}

// Create stores snap and fills in CreatedAt.
func (r *Repo) Create(ctx context.Context, snap *domain.StatsSnapshot) error {
	doc, err := json.Marshal(snap.Stats)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", snap.ID, err)
	}

	query, args, err := psql.Insert(table).
		Columns("id", "list_id", "stats").
		Values(snap.ID, snap.ListID, doc).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert snapshot: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := q.QueryRow(ctx, query, args...).Scan(&snap.CreatedAt); err != nil {
		return postgres.MapError(err, "snapshot", snap.ID)
	}
	return nil
}

// Latest returns the newest snapshot across all lists.
// Returns domain.ErrNotFound when no analysis has been stored.
func (r *Repo) Latest(ctx context.Context) (*domain.StatsSnapshot, error) {
	return r.latest(ctx, nil, "latest")
}

// LatestForList returns the newest snapshot of one word list.
func (r *Repo) LatestForList(ctx context.Context, listID uuid.UUID) (*domain.StatsSnapshot, error) {
	return r.latest(ctx, sq.Eq{"list_id": listID}, listID)
}

func (r *Repo) latest(ctx context.Context, where sq.Sqlizer, key any) (*domain.StatsSnapshot, error) {
	b := psql.Select(columns...).From(table)
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.OrderBy("created_at DESC", "id").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest snapshot: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "snapshot", key)
	}
	return rw.toDomain()
}
