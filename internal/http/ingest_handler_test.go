package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/internal/domain/mocks"
	pkglogger "github.com/virtuacademy/touchpoint/pkg/logger"
)

func setupIngestHandler(t *testing.T) (*mocks.MockIdentityServiceInterface, *IngestHandler) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mocks.NewMockIdentityServiceInterface(ctrl)
	handler := NewIngestHandler(mockService,
		&config.CookieConfig{Domain: ".virtu.academy", Secure: true},
		&config.CORSConfig{AllowedOrigins: []string{"https://virtu.academy"}},
		pkglogger.NewMockLogger(t))
	return mockService, handler
}

func findCookie(t *testing.T, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

func TestIngestHandler_HandleIngest(t *testing.T) {
	t.Run("rejects non-POST", func(t *testing.T) {
		_, handler := setupIngestHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/attrib/ingest", nil)
		rr := httptest.NewRecorder()
		handler.handleIngest(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, handler := setupIngestHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/attrib/ingest", strings.NewReader("{not json"))
		rr := httptest.NewRecorder()
		handler.handleIngest(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects missing url", func(t *testing.T) {
		_, handler := setupIngestHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/attrib/ingest", strings.NewReader(`{"referrer":"https://google.com"}`))
		rr := httptest.NewRecorder()
		handler.handleIngest(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("resolve failure returns 500", func(t *testing.T) {
		mockService, handler := setupIngestHandler(t)

		mockService.EXPECT().
			ResolveOrCreate(gomock.Any(), "", "", "", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodPost, "/api/attrib/ingest", strings.NewReader(`{"url":"https://virtu.academy/"}`))
		rr := httptest.NewRecorder()
		handler.handleIngest(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("records beacon and sets cookies", func(t *testing.T) {
		mockService, handler := setupIngestHandler(t)

		identity := &domain.ResolvedIdentity{
			VisitorID:        "vid-1",
			SessionID:        "sid-1",
			AttributionToken: "tok-1",
		}
		mockService.EXPECT().
			ResolveOrCreate(gomock.Any(), "vid-1", "", "tok-1", gomock.Any(), "203.0.113.9", "Mozilla/5.0").
			Return(identity, nil)
		mockService.EXPECT().
			MergeAttribution(gomock.Any(), "tok-1", gomock.Any(), gomock.Any(), "vid-1", "sid-1").
			DoAndReturn(func(_ context.Context, _ string, _ time.Time, touch domain.AttributionTouch, _, _ string) error {
				assert.Equal(t, "https://virtu.academy/pricing?gclid=g-1", touch.URL)
				assert.Equal(t, "https://google.com", touch.Referrer)
				assert.Equal(t, "203.0.113.9", touch.IP)
				assert.Equal(t, "Mozilla/5.0", touch.UserAgent)
				assert.Equal(t, "google", touch.UTMSource)
				assert.Equal(t, "cpc", touch.UTMMedium)
				assert.Equal(t, "g-1", touch.GCLID)
				assert.Equal(t, "hutk-1", touch.HubspotUTK)
				return nil
			})

		body := `{
			"url": "https://virtu.academy/pricing?gclid=g-1",
			"referrer": "https://google.com",
			"utm": {"utm_source": "google", "utm_medium": "cpc"},
			"click": {"gclid": "g-1"},
			"hubspotutk": "hutk-1"
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/attrib/ingest", strings.NewReader(body))
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		req.Header.Set("User-Agent", "Mozilla/5.0")
		req.AddCookie(&http.Cookie{Name: "va_vid", Value: "vid-1"})
		req.AddCookie(&http.Cookie{Name: "va_attrib", Value: "tok-1"})

		rr := httptest.NewRecorder()
		handler.handleIngest(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp ingestResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.OK)
		assert.Equal(t, "vid-1", resp.VisitorID)
		assert.Equal(t, "sid-1", resp.SessionID)
		assert.Equal(t, "tok-1", resp.Token)
		assert.Equal(t, ".virtu.academy", resp.CookieDomain)

		cookies := rr.Result().Cookies()
		visitor := findCookie(t, cookies, "va_vid")
		assert.Equal(t, "vid-1", visitor.Value)
		assert.True(t, visitor.HttpOnly)
		assert.True(t, visitor.Secure)
		assert.Equal(t, ".virtu.academy", visitor.Domain)
		assert.Equal(t, 90*24*60*60, visitor.MaxAge)

		session := findCookie(t, cookies, "va_sid")
		assert.True(t, session.HttpOnly)
		assert.Equal(t, 30*24*60*60, session.MaxAge)

		attrib := findCookie(t, cookies, "va_attrib")
		assert.Equal(t, "tok-1", attrib.Value)
		assert.False(t, attrib.HttpOnly)
	})

	t.Run("merge failure returns 500", func(t *testing.T) {
		mockService, handler := setupIngestHandler(t)

		mockService.EXPECT().
			ResolveOrCreate(gomock.Any(), "", "", "", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.ResolvedIdentity{VisitorID: "v", SessionID: "s", AttributionToken: "t"}, nil)
		mockService.EXPECT().
			MergeAttribution(gomock.Any(), "t", gomock.Any(), gomock.Any(), "v", "s").
			Return(assert.AnError)

		req := httptest.NewRequest(http.MethodPost, "/api/attrib/ingest", strings.NewReader(`{"url":"https://virtu.academy/"}`))
		rr := httptest.NewRecorder()
		handler.handleIngest(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestClientIP(t *testing.T) {
	t.Run("prefers first forwarded hop", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-Forwarded-For", " 203.0.113.9 , 10.0.0.1")
		assert.Equal(t, "203.0.113.9", clientIP(req))
	})

	t.Run("falls back to real ip header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-Real-IP", "198.51.100.4")
		assert.Equal(t, "198.51.100.4", clientIP(req))
	})

	t.Run("falls back to remote addr host", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "192.0.2.1:5432"
		assert.Equal(t, "192.0.2.1", clientIP(req))
	})
}
