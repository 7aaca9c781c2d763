package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dbPingerMock struct {
	err error
}

func (m *dbPingerMock) Ping(_ context.Context) error {
	return m.err
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dbPingerMock{err: errors.New("down")}, "test")
	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeHealth(t, rec)
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		db         dbPinger
		wantCode   int
		wantStatus string
	}{
		{"db up", &dbPingerMock{}, http.StatusOK, "ok"},
		{"db down", &dbPingerMock{err: errors.New("connection refused")}, http.StatusServiceUnavailable, "down"},
		{"memory mode", nil, http.StatusOK, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(tt.db, "test")
			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantStatus, decodeHealth(t, rec).Status)
		})
	}
}

func TestHealth_DBUp(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dbPingerMock{}, "v1.0.0")
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeHealth(t, rec)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "v1.0.0", resp.Version)
	assert.Equal(t, "postgres", resp.Storage)
	require.Contains(t, resp.Components, "database")
	assert.Equal(t, "ok", resp.Components["database"].Status)
	assert.NotEmpty(t, resp.Components["database"].Latency)
}

func TestHealth_DBDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dbPingerMock{err: errors.New("connection refused")}, "v1.0.0")
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	resp := decodeHealth(t, rec)
	assert.Equal(t, "down", resp.Status)
	assert.Equal(t, "down", resp.Components["database"].Status)
	assert.Empty(t, resp.Components["database"].Latency)
}

func TestHealth_MemoryMode(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(nil, "v1.0.0")
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeHealth(t, rec)
	assert.Equal(t, "memory", resp.Storage)
	assert.NotContains(t, resp.Components, "database")
}
