// Command analyze generates the statistics document for a word list file
// offline, without the server or a database.
//
// Flags override the ANALYZE_* environment and the YAML file named by
// ANALYZE_CONFIG (default ./analyze.yaml):
//
//	--input     word list file (js, text, csv or json)
//	--format    input format, auto-detected by default
//	--output    output base name; writes <output>.json and <output>.min.json
//	--sections  comma-separated sections to generate (default: all)
//	--summary   print a console summary
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/kesava/telugu-word-analysis/internal/adapter/filestore"
	"github.com/kesava/telugu-word-analysis/internal/adapter/wordsource"
	"github.com/kesava/telugu-word-analysis/internal/app"
	"github.com/kesava/telugu-word-analysis/internal/config"
	"github.com/kesava/telugu-word-analysis/internal/domain"
	"github.com/kesava/telugu-word-analysis/internal/lexicon"
	"github.com/kesava/telugu-word-analysis/internal/service/stats"
)

type analyzeConfig struct {
	Input    string           `yaml:"input"    env:"ANALYZE_INPUT"    env-default:"sortdict.js"`
	Format   string           `yaml:"format"   env:"ANALYZE_FORMAT"   env-default:"auto"`
	Output   string           `yaml:"output"   env:"ANALYZE_OUTPUT"   env-default:"telugu-stats"`
	Lexicon  string           `yaml:"lexicon"  env:"ANALYZE_LEXICON"`
	Workers  int              `yaml:"workers"  env:"ANALYZE_WORKERS"  env-default:"0"`
	Sections string           `yaml:"sections" env:"ANALYZE_SECTIONS"`
	Summary  bool             `yaml:"summary"  env:"ANALYZE_SUMMARY"  env-default:"false"`
	Timeout  time.Duration    `yaml:"timeout"  env:"ANALYZE_TIMEOUT"  env-default:"10m"`
	Log      config.LogConfig `yaml:"log"`
}

func main() {
	var cfg analyzeConfig
	if err := config.ReadInto(&cfg, os.Getenv("ANALYZE_CONFIG"), "./analyze.yaml"); err != nil {
		log.Fatalf("load config: %v", err)
	}

	flags := flag.NewFlagSet("analyze", flag.ExitOnError)
	applyFlags(flags, &cfg)
	_ = flags.Parse(os.Args[1:])

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("analysis failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func applyFlags(fs *flag.FlagSet, cfg *analyzeConfig) {
	fs.StringVar(&cfg.Input, "input", cfg.Input, "word list file")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "input format: auto, js, text, csv, json")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output base name")
	fs.StringVar(&cfg.Lexicon, "lexicon", cfg.Lexicon, "YAML lexicon override file")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "segmentation workers (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.Sections, "sections", cfg.Sections, "comma-separated sections (default: all)")
	fs.BoolVar(&cfg.Summary, "summary", cfg.Summary, "print a console summary")
}

func run(ctx context.Context, cfg analyzeConfig, logger *slog.Logger, stdout io.Writer) error {
	format, err := wordsource.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	words, err := wordsource.ReadFile(cfg.Input, format)
	if err != nil {
		return err
	}
	words = domain.NormalizeWords(words)
	logger.Info("word list loaded", slog.String("path", cfg.Input), slog.Int("words", len(words)))

	lex, err := lexicon.LoadFile(cfg.Lexicon)
	if err != nil {
		return err
	}

	analyzer := stats.NewAnalyzer(logger, lex, stats.Config{
		Workers:  cfg.Workers,
		Sections: splitSections(cfg.Sections),
	})

	st, err := analyzer.Analyze(ctx, words)
	if err != nil {
		return err
	}

	store := filestore.New(cfg.Output)
	if err := store.Save(st); err != nil {
		return err
	}
	pretty, minified := store.Paths()
	logger.Info("statistics written", slog.String("pretty", pretty), slog.String("minified", minified))

	if cfg.Summary {
		if err := stats.WriteSummary(stdout, st); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}

func splitSections(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
