package rest

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/kesava/telugu-word-analysis/internal/adapter/chart"
	"github.com/kesava/telugu-word-analysis/internal/domain"
)

type statsSource interface {
	LatestStats(ctx context.Context) (*domain.Stats, error)
}

// StatsHandler serves the newest statistics document and charts drawn
// from it.
type StatsHandler struct {
	stats statsSource
	log   *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(stats statsSource, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{stats: stats, log: logger.With("handler", "stats")}
}

// Stats returns the whole document.
// GET /api/stats
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.stats.LatestStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// Section returns one section of the document.
// GET /api/stats/{section}
func (h *StatsHandler) Section(w http.ResponseWriter, r *http.Request) {
	st, err := h.stats.LatestStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sec, err := st.Section(r.PathValue("section"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

// Chart renders a bar chart as SVG or PNG.
// GET /api/charts/{name}, e.g. /api/charts/syllables.svg
func (h *StatsHandler) Chart(w http.ResponseWriter, r *http.Request) {
	kind, format, err := chart.ParseName(r.PathValue("name"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	st, err := h.stats.LatestStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var buf bytes.Buffer
	if err := chart.Render(&buf, st, kind, format); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", chart.ContentType(format))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
