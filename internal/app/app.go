// Package app wires configuration, storage, services and transport into
// the running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/kesava/telugu-word-analysis/internal/config"
)

// Run loads configuration, builds the server and serves until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("database", cfg.Database.Enabled()),
	)

	c, err := build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.close()

	if err := bootstrapCorpus(ctx, c.corpus, cfg.Analysis, logger); err != nil {
		return fmt.Errorf("bootstrap corpus: %w", err)
	}

	return serve(ctx, cfg.Server, c.handler, logger)
}

// serve runs an http.Server until ctx is done, then drains in-flight
// requests for at most cfg.ShutdownTimeout.
func serve(ctx context.Context, cfg config.ServerConfig, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           h,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server", slog.Duration("timeout", cfg.ShutdownTimeout))
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
