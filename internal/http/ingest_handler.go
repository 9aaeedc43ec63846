package http

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/internal/http/middleware"
	"github.com/virtuacademy/touchpoint/pkg/logger"
)

// Cookie names and lifetimes for the identity triple. The attribution token
// is readable by page JavaScript so it can be copied into booking intake
// fields; the identifiers stay httpOnly.
const (
	cookieVisitor     = "va_vid"
	cookieSession     = "va_sid"
	cookieAttribution = "va_attrib"

	visitorCookieMaxAge     = 90 * 24 * 60 * 60
	sessionCookieMaxAge     = 30 * 24 * 60 * 60
	attributionCookieMaxAge = 90 * 24 * 60 * 60
)

// IngestHandler handles attribution beacons posted by the site snippet.
type IngestHandler struct {
	service domain.IdentityServiceInterface
	cookies *config.CookieConfig
	cors    *config.CORSConfig
	logger  logger.Logger
}

func NewIngestHandler(service domain.IdentityServiceInterface, cookies *config.CookieConfig, cors *config.CORSConfig, logger logger.Logger) *IngestHandler {
	return &IngestHandler{
		service: service,
		cookies: cookies,
		cors:    cors,
		logger:  logger,
	}
}

// RegisterRoutes registers the ingest HTTP endpoints
func (h *IngestHandler) RegisterRoutes(mux *http.ServeMux) {
	withCORS := middleware.CORSMiddleware(h.cors.AllowedOrigins)
	mux.Handle("/api/attrib/ingest", withCORS(http.HandlerFunc(h.handleIngest)))
}

type ingestRequest struct {
	URL        string            `json:"url" valid:"required"`
	Referrer   string            `json:"referrer,omitempty"`
	UTM        map[string]string `json:"utm,omitempty"`
	Click      map[string]string `json:"click,omitempty"`
	HubspotUTK string            `json:"hubspotutk,omitempty"`
}

type ingestResponse struct {
	OK           bool   `json:"ok"`
	VisitorID    string `json:"vid"`
	SessionID    string `json:"sid"`
	Token        string `json:"attribTok"`
	CookieDomain string `json:"cookieDomain,omitempty"`
}

func (h *IngestHandler) handleIngest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteJSONError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if _, err := govalidator.ValidateStruct(&body); err != nil {
		WriteJSONError(w, "Missing url", http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	ip := clientIP(r)
	userAgent := r.Header.Get("User-Agent")

	identity, err := h.service.ResolveOrCreate(r.Context(),
		cookieValue(r, cookieVisitor),
		cookieValue(r, cookieSession),
		cookieValue(r, cookieAttribution),
		now, ip, userAgent)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to resolve identity")
		WriteJSONError(w, "Failed to process beacon", http.StatusInternalServerError)
		return
	}

	touch := domain.AttributionTouch{
		URL:       body.URL,
		Referrer:  body.Referrer,
		IP:        ip,
		UserAgent: userAgent,

		UTMSource:   body.UTM["utm_source"],
		UTMMedium:   body.UTM["utm_medium"],
		UTMCampaign: body.UTM["utm_campaign"],
		UTMTerm:     body.UTM["utm_term"],
		UTMContent:  body.UTM["utm_content"],

		GCLID:  body.Click["gclid"],
		GBRAID: body.Click["gbraid"],
		WBRAID: body.Click["wbraid"],
		DCLID:  body.Click["dclid"],

		FBCLID: body.Click["fbclid"],
		FBP:    body.Click["fbp"],
		FBC:    body.Click["fbc"],

		TTCLID:  body.Click["ttclid"],
		MSCLKID: body.Click["msclkid"],

		HubspotUTK: body.HubspotUTK,
	}
	if err := h.service.MergeAttribution(r.Context(), identity.AttributionToken, now, touch, identity.VisitorID, identity.SessionID); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to merge attribution")
		WriteJSONError(w, "Failed to process beacon", http.StatusInternalServerError)
		return
	}

	h.setCookie(w, cookieVisitor, identity.VisitorID, visitorCookieMaxAge, true)
	h.setCookie(w, cookieSession, identity.SessionID, sessionCookieMaxAge, true)
	h.setCookie(w, cookieAttribution, identity.AttributionToken, attributionCookieMaxAge, false)

	writeJSON(w, http.StatusOK, ingestResponse{
		OK:           true,
		VisitorID:    identity.VisitorID,
		SessionID:    identity.SessionID,
		Token:        identity.AttributionToken,
		CookieDomain: h.cookies.Domain,
	})
}

func (h *IngestHandler) setCookie(w http.ResponseWriter, name, value string, maxAge int, httpOnly bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookies.Domain,
		MaxAge:   maxAge,
		Secure:   h.cookies.Secure,
		HttpOnly: httpOnly,
		SameSite: http.SameSiteLaxMode,
	})
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// socket peer.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
