package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kesava/telugu-word-analysis/internal/adapter/filestore"
	"github.com/kesava/telugu-word-analysis/internal/adapter/postgres"
	"github.com/kesava/telugu-word-analysis/internal/adapter/postgres/snapshot"
	"github.com/kesava/telugu-word-analysis/internal/adapter/postgres/wordlist"
	"github.com/kesava/telugu-word-analysis/internal/auth"
	"github.com/kesava/telugu-word-analysis/internal/config"
	"github.com/kesava/telugu-word-analysis/internal/lexicon"
	"github.com/kesava/telugu-word-analysis/internal/service/corpus"
	"github.com/kesava/telugu-word-analysis/internal/service/pattern"
	"github.com/kesava/telugu-word-analysis/internal/service/stats"
	"github.com/kesava/telugu-word-analysis/internal/transport/middleware"
	"github.com/kesava/telugu-word-analysis/internal/transport/rest"
)

// components is the wired object graph of the server.
type components struct {
	pool     *pgxpool.Pool
	corpus   *corpus.Service
	patterns *pattern.Service
	limiter  *middleware.RateLimiter
	handler  http.Handler
}

// close releases the pool and background goroutines.
func (c *components) close() {
	if c.limiter != nil {
		c.limiter.Stop()
	}
	if c.pool != nil {
		c.pool.Close()
	}
}

// candidateFunc adapts a function to the pattern service's word source.
type candidateFunc func(ctx context.Context) ([]string, error)

func (f candidateFunc) CandidateWords(ctx context.Context) ([]string, error) { return f(ctx) }

// build connects storage, creates the services and mounts the HTTP routes.
// On error everything opened so far is closed.
func build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *components, err error) {
	c := &components{}
	defer func() {
		if err != nil {
			c.close()
		}
	}()

	lex, err := lexicon.LoadFile(cfg.Analysis.LexiconPath)
	if err != nil {
		return nil, err
	}
	analyzer := stats.NewAnalyzer(logger, lex, stats.Config{Workers: cfg.Analysis.Workers})

	deps := corpus.Deps{Analyzer: analyzer}
	if cfg.Database.Enabled() {
		c.pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, c.pool, logger); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		deps.Lists = wordlist.New(c.pool)
		deps.Snapshots = snapshot.New(c.pool)
		deps.Tx = postgres.NewTxManager(c.pool)
		logger.InfoContext(ctx, "storage ready", slog.String("storage", "postgres"))
	} else {
		mem := corpus.NewMemoryStore()
		deps.Lists = mem.WordLists()
		deps.Snapshots = mem.Snapshots()
		deps.Tx = mem
		logger.InfoContext(ctx, "storage ready", slog.String("storage", "memory"))
	}

	if cfg.Analysis.StatsOutput != "" {
		deps.Sink = filestore.New(cfg.Analysis.StatsOutput)
	}

	c.patterns = pattern.NewService(logger, candidateFunc(func(ctx context.Context) ([]string, error) {
		return c.corpus.CandidateWords(ctx)
	}))
	deps.Patterns = c.patterns
	c.corpus = corpus.NewService(logger, deps)

	c.limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	c.handler = newHandler(cfg, logger, c)

	return c, nil
}

func newHandler(cfg *config.Config, logger *slog.Logger, c *components) http.Handler {
	var health *rest.HealthHandler
	if c.pool != nil {
		health = rest.NewHealthHandler(c.pool, BuildVersion())
	} else {
		health = rest.NewHealthHandler(nil, BuildVersion())
	}

	routes := rest.Routes{
		Health:       health,
		Segment:      rest.NewSegmentHandler(logger),
		Stats:        rest.NewStatsHandler(c.corpus, logger),
		Patterns:     rest.NewPatternHandler(c.patterns, pattern.ExampleWords(), logger),
		SearchLimit:  c.limiter.Limit(cfg.RateLimit.PatternSearchPerMinute),
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	}

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}

	if cfg.Auth.Enabled() {
		tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
		routes.Admin = rest.NewAdminHandler(c.corpus, logger)
		routes.RequireAdmin = middleware.RequireAdmin()
		mws = append(mws, middleware.Auth(tokens))
	} else {
		logger.Warn("admin API disabled: auth.jwt_secret is not set")
	}

	return middleware.Chain(mws...)(rest.NewRouter(routes))
}
