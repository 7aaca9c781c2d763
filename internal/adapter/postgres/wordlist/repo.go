// Package wordlist stores imported word lists and their words in PostgreSQL.
// Words are bulk-loaded with COPY.
package wordlist

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/kesava/telugu-word-analysis/internal/adapter/postgres"
	"github.com/kesava/telugu-word-analysis/internal/domain"
)

const (
	listsTable = "word_lists"
	wordsTable = "words"
)

var (
	psql        = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	listColumns = []string{"id", "name", "source", "word_count", "created_at"}
	wordColumns = []string{"list_id", "position", "text"}
)

// Repo provides word list persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word list repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type listRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Source    string    `db:"source"`
	WordCount int       `db:"word_count"`
	CreatedAt time.Time `db:"created_at"`
}

func (r listRow) toDomain() domain.WordList {
	return domain.WordList{
		ID:        r.ID,
		Name:      r.Name,
		Source:    r.Source,
		WordCount: r.WordCount,
		CreatedAt: r.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts list and copies words in input order. list.WordCount and
// list.CreatedAt are filled in. Run it inside a transaction so a failed
// copy leaves no empty list behind.
func (r *Repo) Create(ctx context.Context, list *domain.WordList, words []string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	list.WordCount = len(words)

	query, args, err := psql.Insert(listsTable).
		Columns("id", "name", "source", "word_count").
		Values(list.ID, list.Name, list.Source, list.WordCount).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert word list: %w", err)
	}

	if err := q.QueryRow(ctx, query, args...).Scan(&list.CreatedAt); err != nil {
		return postgres.MapError(err, "word list", list.Name)
	}

	if len(words) == 0 {
		return nil
	}

	rows := make([][]any, len(words))
	for i, w := range words {
		rows[i] = []any{list.ID, i, w}
	}

	n, err := q.CopyFrom(ctx, pgx.Identifier{wordsTable}, wordColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return postgres.MapError(err, "words of list", list.ID)
	}
	if n != int64(len(words)) {
		return fmt.Errorf("copy words of list %s: copied %d of %d", list.ID, n, len(words))
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word list. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WordList, error) {
	query, args, err := psql.Select(listColumns...).
		From(listsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word list: %w", err)
	}

	var row listRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "word list", id)
	}

	l := row.toDomain()
	return &l, nil
}

// Latest returns the most recently imported word list.
// Returns domain.ErrNotFound when nothing has been imported.
func (r *Repo) Latest(ctx context.Context) (*domain.WordList, error) {
	query, args, err := psql.Select(listColumns...).
		From(listsTable).
		OrderBy("created_at DESC", "id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest word list: %w", err)
	}

	var row listRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "word list", "latest")
	}

	l := row.toDomain()
	return &l, nil
}

// List returns all word lists, newest first. Returns an empty slice (not nil)
// when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.WordList, error) {
	query, args, err := psql.Select(listColumns...).
		From(listsTable).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list word lists: %w", err)
	}

	var rows []listRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list word lists: %w", err)
	}

	lists := make([]domain.WordList, len(rows))
	for i, row := range rows {
		lists[i] = row.toDomain()
	}
	return lists, nil
}

// Words returns the words of a list in import order. limit <= 0 returns
// every word from offset on.
func (r *Repo) Words(ctx context.Context, listID uuid.UUID, limit, offset int) ([]string, error) {
	b := psql.Select("text").
		From(wordsTable).
		Where(sq.Eq{"list_id": listID}).
		OrderBy("position")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	words := []string{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &words, query, args...); err != nil {
		return nil, postgres.MapError(err, "words of list", listID)
	}
	return words, nil
}
