package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/kesava/telugu-word-analysis/internal/akshara"
	"github.com/kesava/telugu-word-analysis/internal/domain"
)

const maxSegmentRunes = 256

// SegmentResponse is the akshara breakdown of one word.
type SegmentResponse struct {
	Word          string   `json:"word"`
	Syllables     []string `json:"syllables"`
	SyllableCount int      `json:"syllableCount"`
	Structure     string   `json:"structure"`
	CVPattern     string   `json:"cvPattern"`
}

// SegmentHandler serves akshara segmentation of single words.
type SegmentHandler struct {
	log *slog.Logger
}

// NewSegmentHandler creates a SegmentHandler.
func NewSegmentHandler(logger *slog.Logger) *SegmentHandler {
	return &SegmentHandler{log: logger.With("handler", "segment")}
}

// Segment splits ?word= into aksharas. Non-Telugu runes come back as
// singleton aksharas.
// GET /api/segment?word=అమ్మ
func (h *SegmentHandler) Segment(w http.ResponseWriter, r *http.Request) {
	word := domain.NormalizeWord(r.URL.Query().Get("word"))
	switch {
	case word == "":
		handleError(w, r, h.log, domain.NewValidationError("word", "required"))
		return
	case utf8.RuneCountInString(word) > maxSegmentRunes:
		handleError(w, r, h.log, domain.NewValidationError("word", fmt.Sprintf("must be at most %d characters", maxSegmentRunes)))
		return
	}

	syllables := akshara.Segment(word)
	shape := akshara.Describe(word)
	writeJSON(w, http.StatusOK, SegmentResponse{
		Word:          word,
		Syllables:     syllables,
		SyllableCount: len(syllables),
		Structure:     shape.Structure,
		CVPattern:     shape.CVPattern,
	})
}
