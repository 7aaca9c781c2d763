package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/kesava/telugu-word-analysis/internal/adapter/wordsource"
	"github.com/kesava/telugu-word-analysis/internal/config"
	"github.com/kesava/telugu-word-analysis/internal/service/corpus"
)

// bootstrapCorpus imports and analyzes the configured word list when the
// store holds no lists yet. It is a no-op without a word list path.
func bootstrapCorpus(ctx context.Context, svc *corpus.Service, cfg config.AnalysisConfig, logger *slog.Logger) error {
	if cfg.WordListPath == "" {
		return nil
	}

	lists, err := svc.ListWordLists(ctx)
	if err != nil {
		return fmt.Errorf("list word lists: %w", err)
	}
	if len(lists) > 0 {
		logger.InfoContext(ctx, "corpus already loaded", slog.Int("lists", len(lists)))
		return nil
	}

	format, err := wordsource.ParseFormat(cfg.WordListFormat)
	if err != nil {
		return err
	}

	start := time.Now()
	words, err := wordsource.ReadFile(cfg.WordListPath, format)
	if err != nil {
		return err
	}

	list, err := svc.ImportWordList(ctx, corpus.ImportInput{
		Name:   listName(cfg.WordListPath),
		Source: cfg.WordListPath,
		Words:  words,
	})
	if err != nil {
		return fmt.Errorf("import %s: %w", cfg.WordListPath, err)
	}

	if _, err := svc.Analyze(ctx, list.ID); err != nil {
		return fmt.Errorf("analyze %s: %w", cfg.WordListPath, err)
	}

	logger.InfoContext(ctx, "corpus bootstrapped",
		slog.String("path", cfg.WordListPath),
		slog.Int("words", list.WordCount),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

func listName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
