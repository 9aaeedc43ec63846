package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkglogger "github.com/virtuacademy/touchpoint/pkg/logger"
)

func TestRootHandler(t *testing.T) {
	handler := NewRootHandler("1.2.3", pkglogger.NewMockLogger(t))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	t.Run("root reports service and version", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "touchpoint", body["service"])
		assert.Equal(t, "1.2.3", body["version"])
	})

	t.Run("unknown path returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
