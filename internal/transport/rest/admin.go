package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kesava/telugu-word-analysis/internal/adapter/wordsource"
	"github.com/kesava/telugu-word-analysis/internal/domain"
	"github.com/kesava/telugu-word-analysis/internal/service/corpus"
)

type corpusService interface {
	ImportWordList(ctx context.Context, in corpus.ImportInput) (*domain.WordList, error)
	Analyze(ctx context.Context, listID uuid.UUID) (*domain.StatsSnapshot, error)
	ListWordLists(ctx context.Context) ([]domain.WordList, error)
	Words(ctx context.Context, listID uuid.UUID, limit, offset int) ([]string, error)
}

// AdminHandler serves the word list management endpoints. Routes must be
// wrapped with middleware.RequireAdmin.
type AdminHandler struct {
	corpus corpusService
	log    *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(corpus corpusService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{corpus: corpus, log: logger.With("handler", "admin")}
}

// ImportRequest uploads a word list. Either Content (parsed per Format) or
// Words must be set. Analyze runs the statistics right after import.
type ImportRequest struct {
	Name    string   `json:"name"`
	Source  string   `json:"source"`
	Format  string   `json:"format"`
	Content string   `json:"content"`
	Words   []string `json:"words"`
	Analyze bool     `json:"analyze"`
}

// ImportResponse is the stored list plus its snapshot when analyzed.
type ImportResponse struct {
	WordList *domain.WordList      `json:"wordList"`
	Snapshot *domain.StatsSnapshot `json:"snapshot,omitempty"`
}

// Import stores a new word list.
// POST /admin/wordlists
func (h *AdminHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	words, err := req.words()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	list, err := h.corpus.ImportWordList(r.Context(), corpus.ImportInput{
		Name:   req.Name,
		Source: req.Source,
		Words:  words,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := ImportResponse{WordList: list}
	if req.Analyze {
		snap, err := h.corpus.Analyze(r.Context(), list.ID)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		resp.Snapshot = snap
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (req ImportRequest) words() ([]string, error) {
	hasContent := strings.TrimSpace(req.Content) != ""
	switch {
	case hasContent && len(req.Words) > 0:
		return nil, domain.NewValidationError("content", "set either content or words, not both")
	case !hasContent:
		return req.Words, nil
	}

	format, err := wordsource.ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}
	words, err := wordsource.Parse(strings.NewReader(req.Content), format)
	if err != nil {
		return nil, domain.NewValidationError("content", err.Error())
	}
	return words, nil
}

// Analyze runs the statistics pipeline over a stored list.
// POST /admin/wordlists/{id}/analyze
func (h *AdminHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	snap, err := h.corpus.Analyze(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// List returns every stored word list, newest first.
// GET /admin/wordlists
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.corpus.ListWordLists(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if lists == nil {
		lists = []domain.WordList{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"wordLists": lists})
}

// Words pages through a list's words.
// GET /admin/wordlists/{id}/words?limit=100&offset=0
func (h *AdminHandler) Words(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	words, err := h.corpus.Words(r.Context(), id, limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": words, "offset": offset})
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}
