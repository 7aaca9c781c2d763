package corpus

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

// MemoryStore keeps word lists and snapshots in process memory. It backs
// the server when no database is configured and satisfies the same
// contracts as the PostgreSQL repositories.
type MemoryStore struct {
	mu    sync.RWMutex
	lists []domain.WordList // oldest first
	words map[uuid.UUID][]string
	snaps []domain.StatsSnapshot // oldest first
	now   func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		words: make(map[uuid.UUID][]string),
		now:   time.Now,
	}
}

// WordLists returns the word list view of the store.
func (m *MemoryStore) WordLists() *MemoryWordLists { return &MemoryWordLists{m} }

// Snapshots returns the snapshot view of the store.
func (m *MemoryStore) Snapshots() *MemorySnapshots { return &MemorySnapshots{m} }

// RunInTx runs fn directly; the store applies each write atomically.
func (m *MemoryStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MemoryWordLists is the word list half of MemoryStore.
type MemoryWordLists struct{ m *MemoryStore }

func (r *MemoryWordLists) Create(_ context.Context, list *domain.WordList, words []string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, l := range r.m.lists {
		if l.Name == list.Name {
			return fmt.Errorf("word list %s: %w", list.Name, domain.ErrAlreadyExists)
		}
	}

	list.WordCount = len(words)
	list.CreatedAt = r.m.now()
	r.m.lists = append(r.m.lists, *list)
	r.m.words[list.ID] = slices.Clone(words)
	return nil
}

func (r *MemoryWordLists) GetByID(_ context.Context, id uuid.UUID) (*domain.WordList, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	for _, l := range r.m.lists {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, fmt.Errorf("word list %s: %w", id, domain.ErrNotFound)
}

func (r *MemoryWordLists) Latest(_ context.Context) (*domain.WordList, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	if len(r.m.lists) == 0 {
		return nil, fmt.Errorf("word list latest: %w", domain.ErrNotFound)
	}
	l := r.m.lists[len(r.m.lists)-1]
	return &l, nil
}

func (r *MemoryWordLists) List(_ context.Context) ([]domain.WordList, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	out := slices.Clone(r.m.lists)
	slices.Reverse(out)
	if out == nil {
		out = []domain.WordList{}
	}
	return out, nil
}

func (r *MemoryWordLists) Words(_ context.Context, listID uuid.UUID, limit, offset int) ([]string, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	words := r.m.words[listID]
	if offset >= len(words) {
		return []string{}, nil
	}
	words = words[offset:]
	if limit > 0 && limit < len(words) {
		words = words[:limit]
	}
	return slices.Clone(words), nil
}

// MemorySnapshots is the snapshot half of MemoryStore.
type MemorySnapshots struct{ m *MemoryStore }

func (r *MemorySnapshots) Create(_ context.Context, snap *domain.StatsSnapshot) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	snap.CreatedAt = r.m.now()
	r.m.snaps = append(r.m.snaps, *snap)
	return nil
}

func (r *MemorySnapshots) Latest(_ context.Context) (*domain.StatsSnapshot, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	if len(r.m.snaps) == 0 {
		return nil, fmt.Errorf("snapshot latest: %w", domain.ErrNotFound)
	}
	s := r.m.snaps[len(r.m.snaps)-1]
	return &s, nil
}
