package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondNotImplemented(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotImplemented(rec)

	// placeholder endpoints return 200 with a fixed body
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{
		"error":   "Not implemented yet",
		"message": "Phase 1: Infrastructure setup in progress",
	}, body)
}

func TestRespondJSON_WritesBodyAsIs(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]int{"answer": 42})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"answer":42}`, rec.Body.String())
}

func TestParseJSONBody(t *testing.T) {
	type payload struct {
		UserMessage string `json:"user_message"`
	}

	t.Run("valid body parses", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/interact",
			strings.NewReader(`{"user_message":"hello"}`))

		var p payload
		require.NoError(t, ParseJSONBody(req, &p, 1<<20))
		assert.Equal(t, "hello", p.UserMessage)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/interact",
			strings.NewReader(`{"user_message":"hello","mystery":true}`))

		var p payload
		assert.Error(t, ParseJSONBody(req, &p, 1<<20))
	})

	t.Run("oversized body is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/interact",
			strings.NewReader(`{"user_message":"`+strings.Repeat("a", 100)+`"}`))

		var p payload
		assert.Error(t, ParseJSONBody(req, &p, 16))
	})
}

func TestExtractRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, ExtractRequestID(req))

	req.Header.Set("X-Request-ID", "req-123")
	assert.Equal(t, "req-123", ExtractRequestID(req))
}
