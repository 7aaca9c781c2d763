package rest

import (
	"net/http"

	"github.com/kesava/telugu-word-analysis/internal/transport/middleware"
)

// Routes groups the handlers and middleware mounted by NewRouter. Admin
// may be nil when no JWT secret is configured; the admin routes are then
// not registered.
type Routes struct {
	Health   *HealthHandler
	Segment  *SegmentHandler
	Stats    *StatsHandler
	Patterns *PatternHandler
	Admin    *AdminHandler

	// RequireAdmin guards the admin routes.
	RequireAdmin middleware.Middleware
	// SearchLimit rate-limits pattern search.
	SearchLimit middleware.Middleware
	// MaxBodyBytes bounds request bodies; zero disables the limit.
	MaxBodyBytes int64
}

// NewRouter registers every route on a ServeMux.
func NewRouter(rt Routes) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	mux.HandleFunc("GET /api/segment", rt.Segment.Segment)
	mux.HandleFunc("GET /api/stats", rt.Stats.Stats)
	mux.HandleFunc("GET /api/stats/{section}", rt.Stats.Section)
	mux.HandleFunc("GET /api/charts/{name}", rt.Stats.Chart)

	search := http.Handler(http.HandlerFunc(rt.Patterns.Search))
	if rt.SearchLimit != nil {
		search = rt.SearchLimit(search)
	}
	mux.Handle("POST /api/patterns/search", limitBody(search, rt.MaxBodyBytes))
	mux.HandleFunc("GET /api/patterns/describe", rt.Patterns.Describe)
	mux.HandleFunc("GET /api/patterns/examples", rt.Patterns.Examples)

	if rt.Admin != nil {
		guard := rt.RequireAdmin
		if guard == nil {
			guard = middleware.RequireAdmin()
		}
		mux.Handle("POST /admin/wordlists", guard(limitBody(http.HandlerFunc(rt.Admin.Import), rt.MaxBodyBytes)))
		mux.Handle("GET /admin/wordlists", guard(http.HandlerFunc(rt.Admin.List)))
		mux.Handle("POST /admin/wordlists/{id}/analyze", guard(http.HandlerFunc(rt.Admin.Analyze)))
		mux.Handle("GET /admin/wordlists/{id}/words", guard(http.HandlerFunc(rt.Admin.Words)))
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})

	return mux
}

func limitBody(next http.Handler, n int64) http.Handler {
	if n <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		next.ServeHTTP(w, r)
	})
}
