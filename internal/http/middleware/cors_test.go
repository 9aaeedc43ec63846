package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORSMiddleware([]string{"https://virtu.academy", "https://www.virtu.academy"})(next)

	t.Run("allow-listed origin is echoed back", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/attrib/ingest", nil)
		req.Header.Set("Origin", "https://www.virtu.academy")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://www.virtu.academy", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "Origin", w.Header().Get("Vary"))
	})

	t.Run("unknown origin falls back to the first configured one", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/attrib/ingest", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "https://virtu.academy", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		called := false
		inner := CORSMiddleware([]string{"https://virtu.academy"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		req := httptest.NewRequest(http.MethodOptions, "/api/attrib/ingest", nil)
		req.Header.Set("Origin", "https://virtu.academy")
		w := httptest.NewRecorder()

		inner.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, called)
		assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("no configured origins leaves the header unset", func(t *testing.T) {
		inner := CORSMiddleware(nil)(next)
		req := httptest.NewRequest(http.MethodPost, "/api/attrib/ingest", nil)
		req.Header.Set("Origin", "https://virtu.academy")
		w := httptest.NewRecorder()

		inner.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
