// Package stats builds the statistics document for a word corpus. Every
// section reads the same segmentation of the corpus, computed once per run.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/kesava/telugu-word-analysis/internal/domain"
	"github.com/kesava/telugu-word-analysis/internal/lexicon"
)

// Config controls an Analyzer.
type Config struct {
	// Workers bounds segmentation concurrency. Zero or less uses GOMAXPROCS.
	Workers int
	// Sections restricts generation to the named sections. Empty means all.
	Sections []string
}

type section struct {
	name string
	run  func(a *Analyzer, c *corpus, st *domain.Stats)
}

// allSections defines the canonical generation order.
var allSections = []section{
	{domain.SectionBasic, (*Analyzer).basic},
	{domain.SectionLengthDistribution, (*Analyzer).lengthDistribution},
	{domain.SectionSyllableAnalysis, (*Analyzer).syllableAnalysis},
	{domain.SectionAksharams, (*Analyzer).aksharams},
	{domain.SectionGunintam, (*Analyzer).gunintam},
	{domain.SectionWordBeginnings, (*Analyzer).wordBeginnings},
	{domain.SectionWordEndings, (*Analyzer).wordEndings},
	{domain.SectionPatterns, (*Analyzer).patterns},
	{domain.SectionTeluguLinguistics, (*Analyzer).teluguLinguistics},
	{domain.SectionMorphology, (*Analyzer).morphology},
	{domain.SectionPhonetics, (*Analyzer).phonetics},
	{domain.SectionSemanticPatterns, (*Analyzer).semanticPatterns},
	{domain.SectionInterestingWords, (*Analyzer).interestingWords},
}

// Analyzer produces domain.Stats documents. It holds no per-run state and
// may be shared between goroutines.
type Analyzer struct {
	log *slog.Logger
	lex *lexicon.Lexicon
	cfg Config
	now func() time.Time
}

// NewAnalyzer creates an Analyzer. A nil lexicon selects lexicon.Default.
func NewAnalyzer(logger *slog.Logger, lex *lexicon.Lexicon, cfg Config) *Analyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Analyzer{
		log: logger.With("service", "stats"),
		lex: lex,
		cfg: cfg,
		now: time.Now,
	}
}

// Analyze segments words and runs the configured sections in order.
// Word order and duplicates are significant. Cancelling ctx aborts the run.
func (a *Analyzer) Analyze(ctx context.Context, words []string) (*domain.Stats, error) {
	toRun, err := selectSections(a.cfg.Sections)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	c, err := a.buildCorpus(ctx, words)
	if err != nil {
		return nil, fmt.Errorf("segment corpus: %w", err)
	}
	a.log.DebugContext(ctx, "corpus segmented",
		slog.Int("words", len(words)),
		slog.Duration("duration", time.Since(start)),
	)

	st := &domain.Stats{
		Metadata: domain.Metadata{
			GeneratedAt: a.now().UTC(),
			Version:     domain.StatsVersion,
			TotalWords:  len(words),
		},
	}

	for _, s := range toRun {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sectionStart := time.Now()
		s.run(a, c, st)
		a.log.DebugContext(ctx, "section completed",
			slog.String("section", s.name),
			slog.Duration("duration", time.Since(sectionStart)),
		)
	}

	a.log.InfoContext(ctx, "analysis completed",
		slog.Int("words", len(words)),
		slog.Int("sections", len(toRun)),
		slog.Duration("duration", time.Since(start)),
	)
	return st, nil
}

// selectSections keeps canonical order regardless of the order names are
// given in. Unknown names are a validation error.
func selectSections(names []string) ([]section, error) {
	if len(names) == 0 {
		return allSections, nil
	}

	var unknown []domain.FieldError
	for _, n := range names {
		if !slices.ContainsFunc(allSections, func(s section) bool { return s.name == n }) {
			unknown = append(unknown, domain.FieldError{Field: "sections", Message: fmt.Sprintf("unknown section %q", n)})
		}
	}
	if len(unknown) > 0 {
		return nil, domain.NewValidationErrors(unknown)
	}

	var out []section
	for _, s := range allSections {
		if slices.Contains(names, s.name) {
			out = append(out, s)
		}
	}
	return out, nil
}
