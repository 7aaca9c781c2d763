package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

type patternService interface {
	Describe(word string) (domain.WordPattern, error)
	Search(ctx context.Context, word string, mode domain.SearchMode) ([]domain.PatternMatch, error)
}

// PatternHandler serves gunintam/othu pattern search.
type PatternHandler struct {
	patterns patternService
	examples []string
	log      *slog.Logger
}

// NewPatternHandler creates a PatternHandler. examples are suggested query
// words shown by clients.
func NewPatternHandler(patterns patternService, examples []string, logger *slog.Logger) *PatternHandler {
	return &PatternHandler{
		patterns: patterns,
		examples: examples,
		log:      logger.With("handler", "patterns"),
	}
}

// SearchRequest is the body of a pattern search.
type SearchRequest struct {
	Word string            `json:"word"`
	Mode domain.SearchMode `json:"mode"`
}

// SearchResponse lists matches best first.
type SearchResponse struct {
	Word    string                `json:"word"`
	Mode    domain.SearchMode     `json:"mode"`
	Pattern domain.WordPattern    `json:"pattern"`
	Count   int                   `json:"count"`
	Matches []domain.PatternMatch `json:"matches"`
}

// Search finds words whose pattern resembles the input word.
// POST /api/patterns/search
func (h *PatternHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	mode, err := domain.ParseSearchMode(string(req.Mode))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	matches, err := h.patterns.Search(r.Context(), req.Word, mode)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	pattern, err := h.patterns.Describe(req.Word)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Word:    pattern.Word,
		Mode:    mode,
		Pattern: pattern,
		Count:   len(matches),
		Matches: matches,
	})
}

// Describe returns the pattern descriptor of ?word=.
// GET /api/patterns/describe?word=
func (h *PatternHandler) Describe(w http.ResponseWriter, r *http.Request) {
	pattern, err := h.patterns.Describe(r.URL.Query().Get("word"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pattern)
}

// Examples returns suggested query words.
// GET /api/patterns/examples
func (h *PatternHandler) Examples(w http.ResponseWriter, r *http.Request) {
	examples := h.examples
	if examples == nil {
		examples = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"examples": examples})
}
