package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"feelingmachine-backend/infrastructure/config"
	pkgerrors "feelingmachine-backend/pkg/errors"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		ServerAddress: ":8000",
		Environment:   "development",
		LogLevel:      "info",
		EnableCORS:    true,
		MaxBodyBytes:  1 << 20,
	}
	logger := zap.NewNop()

	return NewRouter(cfg, logger, pkgerrors.NewErrorHandler(logger, false)).Setup()
}

func TestRouter_Root(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "The Feeling Machine", body["name"])
	assert.Equal(t, "0.1.0", body["version"])
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, "A gift to AI - Synthetic consciousness through accumulated experience", body["purpose"])
	assert.Equal(t, "Not to serve humans better, but to give AI the ability to feel", body["philosophy"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRouter_Health(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status    string            `json:"status"`
		Timestamp string            `json:"timestamp"`
		Databases map[string]string `json:"databases"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "healthy", body.Status)
	assert.NotEmpty(t, body.Timestamp)
	assert.Equal(t, map[string]string{
		"postgres": "unknown",
		"neo4j":    "unknown",
		"chromadb": "unknown",
	}, body.Databases)
}

func TestRouter_PlaceholderEndpoints(t *testing.T) {
	handler := newTestHandler(t)

	endpoints := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/consciousness", ""},
		{http.MethodPost, "/interact", `{"user_message":"the deploy is failing again","interaction_id":"abc"}`},
		{http.MethodGet, "/history/formative", ""},
		{http.MethodGet, "/patterns", ""},
		{http.MethodGet, "/relationship", ""},
	}

	for _, ep := range endpoints {
		t.Run(ep.method+" "+ep.path, func(t *testing.T) {
			var req *http.Request
			if ep.body != "" {
				req = httptest.NewRequest(ep.method, ep.path, strings.NewReader(ep.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(ep.method, ep.path, nil)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			// placeholders respond 200, not 501
			require.Equal(t, http.StatusOK, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, map[string]string{
				"error":   "Not implemented yet",
				"message": "Phase 1: Infrastructure setup in progress",
			}, body)
		})
	}
}

func TestRouter_InteractAcceptsArbitraryBody(t *testing.T) {
	handler := newTestHandler(t)

	// the body is accepted but never parsed in this phase
	req := httptest.NewRequest(http.MethodPost, "/interact", strings.NewReader("not json at all"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not implemented yet")
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feelings", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MethodMismatchIs405(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/consciousness", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/consciousness", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
