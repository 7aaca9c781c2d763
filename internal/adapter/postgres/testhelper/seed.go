//go:build integration

package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

// SeedWordList inserts a word list with a unique name and its words.
func SeedWordList(t *testing.T, pool *pgxpool.Pool, words ...string) domain.WordList {
	t.Helper()
	ctx := context.Background()

	list := domain.WordList{
		ID:        uuid.New(),
		Name:      "seed-" + uuid.New().String()[:8],
		Source:    "testhelper",
		WordCount: len(words),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO word_lists (id, name, source, word_count) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		list.ID, list.Name, list.Source, list.WordCount,
	).Scan(&list.CreatedAt)
	if err != nil {
		t.Fatalf("SeedWordList: insert list: %v", err)
	}

	rows := make([][]any, len(words))
	for i, w := range words {
		rows[i] = []any{list.ID, i, w}
	}
	if _, err := pool.CopyFrom(ctx, pgx.Identifier{"words"}, []string{"list_id", "position", "text"}, pgx.CopyFromRows(rows)); err != nil {
		t.Fatalf("SeedWordList: copy words: %v", err)
	}

	return list
}
