package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	version string
	storage string
}

// NewHealthHandler creates a HealthHandler. A nil db means the server runs
// on the in-memory corpus and readiness does not depend on a database.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	storage := "postgres"
	if db == nil {
		storage = "memory"
	}
	return &HealthHandler{db: db, version: version, storage: storage}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Storage    string                `json:"storage,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200.
// GET /live
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 while the database is unreachable.
// GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	comp := h.pingDB(r.Context())
	status := http.StatusOK
	if comp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{Status: comp.Status, Timestamp: time.Now()})
}

// Health reports version, storage mode and per-component status.
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Storage:    h.storage,
		Components: map[string]CompStatus{},
		Timestamp:  time.Now(),
	}

	if h.db != nil {
		comp := h.pingDB(r.Context())
		resp.Components["database"] = comp
		resp.Status = comp.Status
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	if h.db == nil {
		return CompStatus{Status: "ok"}
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
