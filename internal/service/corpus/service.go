// Package corpus manages imported word lists and their analysis snapshots.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

const (
	maxNameLength   = 100
	defaultPageSize = 100
	maxPageSize     = 1000
)

type wordListRepo interface {
	Create(ctx context.Context, list *domain.WordList, words []string) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WordList, error)
	Latest(ctx context.Context) (*domain.WordList, error)
	List(ctx context.Context) ([]domain.WordList, error)
	Words(ctx context.Context, listID uuid.UUID, limit, offset int) ([]string, error)
}

type snapshotRepo interface {
	Create(ctx context.Context, snap *domain.StatsSnapshot) error
	Latest(ctx context.Context) (*domain.StatsSnapshot, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type analyzer interface {
	Analyze(ctx context.Context, words []string) (*domain.Stats, error)
}

type cacheInvalidator interface {
	Invalidate()
}

type statsSink interface {
	Save(st *domain.Stats) error
}

// Deps groups the collaborators of Service. Patterns and Sink are optional.
type Deps struct {
	Lists     wordListRepo
	Snapshots snapshotRepo
	Tx        txManager
	Analyzer  analyzer
	Patterns  cacheInvalidator
	Sink      statsSink
}

// Service imports word lists, analyzes them and serves the latest results.
type Service struct {
	log       *slog.Logger
	lists     wordListRepo
	snapshots snapshotRepo
	tx        txManager
	analyzer  analyzer
	patterns  cacheInvalidator
	sink      statsSink
}

// NewService creates a new corpus service.
func NewService(logger *slog.Logger, deps Deps) *Service {
	return &Service{
		log:       logger.With("service", "corpus"),
		lists:     deps.Lists,
		snapshots: deps.Snapshots,
		tx:        deps.Tx,
		analyzer:  deps.Analyzer,
		patterns:  deps.Patterns,
		sink:      deps.Sink,
	}
}

// ImportInput is a word list to store.
type ImportInput struct {
	Name   string
	Source string
	Words  []string
}

func (in ImportInput) validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case utf8.RuneCountInString(name) > maxNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("must be at most %d characters", maxNameLength)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ImportWordList normalizes the words (trim, NFC, drop empty) and stores
// them with the list in one transaction. Order and duplicates are kept.
func (s *Service) ImportWordList(ctx context.Context, in ImportInput) (*domain.WordList, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	words := domain.NormalizeWords(in.Words)
	if len(words) == 0 {
		return nil, domain.NewValidationError("words", "at least one non-empty word required")
	}

	list := &domain.WordList{
		ID:     uuid.New(),
		Name:   strings.TrimSpace(in.Name),
		Source: strings.TrimSpace(in.Source),
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.lists.Create(ctx, list, words)
	})
	if err != nil {
		return nil, fmt.Errorf("import word list: %w", err)
	}

	if s.patterns != nil {
		s.patterns.Invalidate()
	}

	s.log.InfoContext(ctx, "word list imported",
		slog.String("list_id", list.ID.String()),
		slog.String("name", list.Name),
		slog.Int("words", list.WordCount),
		slog.Int("dropped", len(in.Words)-len(words)),
	)

	return list, nil
}

// Analyze runs the statistics pipeline over a stored list and keeps the
// result as the newest snapshot.
func (s *Service) Analyze(ctx context.Context, listID uuid.UUID) (*domain.StatsSnapshot, error) {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}

	words, err := s.lists.Words(ctx, list.ID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}

	st, err := s.analyzer.Analyze(ctx, words)
	if err != nil {
		return nil, fmt.Errorf("analyze list %s: %w", list.ID, err)
	}

	snap := &domain.StatsSnapshot{ID: uuid.New(), ListID: list.ID, Stats: st}
	if err := s.snapshots.Create(ctx, snap); err != nil {
		return nil, fmt.Errorf("store snapshot: %w", err)
	}

	if s.sink != nil {
		if err := s.sink.Save(st); err != nil {
			s.log.WarnContext(ctx, "stats file not written", slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "word list analyzed",
		slog.String("list_id", list.ID.String()),
		slog.String("snapshot_id", snap.ID.String()),
		slog.Int("words", len(words)),
	)

	return snap, nil
}

// LatestStats returns the newest statistics document.
// Returns domain.ErrNotFound when nothing has been analyzed.
func (s *Service) LatestStats(ctx context.Context) (*domain.Stats, error) {
	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Stats, nil
}

// Words returns a page of a list's words. Limit is clamped to
// [1, 1000], defaulting to 100.
func (s *Service) Words(ctx context.Context, listID uuid.UUID, limit, offset int) ([]string, error) {
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must be >= 0")
	}
	if _, err := s.lists.GetByID(ctx, listID); err != nil {
		return nil, err
	}
	return s.lists.Words(ctx, listID, clampLimit(limit), offset)
}

// ListWordLists returns all stored lists, newest first.
func (s *Service) ListWordLists(ctx context.Context) ([]domain.WordList, error) {
	return s.lists.List(ctx)
}

// CandidateWords returns the words of the newest list, or an empty slice
// when nothing has been imported.
func (s *Service) CandidateWords(ctx context.Context) ([]string, error) {
	list, err := s.lists.Latest(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.lists.Words(ctx, list.ID, 0, 0)
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultPageSize
	case limit > maxPageSize:
		return maxPageSize
	default:
		return limit
	}
}
