package domain

import (
	"context"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_repositories.go -package mocks github.com/virtuacademy/touchpoint/internal/domain VisitorRepository,SessionRepository,AttributionRepository,InboundWebhookRepository,AppointmentRepository,CanonicalEventRepository,DeliveryRepository

// SessionInactivityWindow is the gap after which a session id must not be
// reused.
const SessionInactivityWindow = 30 * time.Minute

// Visitor is the long-lived anonymous identity behind the va_vid cookie.
type Visitor struct {
	ID          string    `json:"id"`
	FirstSeenAt time.Time `json:"first_seen_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}

// Session groups activity under a visitor. The first IP and user agent are
// captured at creation and later attached to conversion payloads.
type Session struct {
	ID          string    `json:"id"`
	VisitorID   string    `json:"visitor_id"`
	FirstSeenAt time.Time `json:"first_seen_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
	IPFirst     *string   `json:"ip_first,omitempty"`
	UAFirst     *string   `json:"ua_first,omitempty"`
}

// Expired reports whether the session may no longer be reused at the given
// instant.
func (s *Session) Expired(now time.Time) bool {
	return now.Sub(s.LastSeenAt) > SessionInactivityWindow
}

// Attribution is the multi-touch marketing record keyed by the va_attrib
// token. First-touch fields are write-once; last-touch fields follow the most
// recent beacon; marketing parameters merge non-destructively.
type Attribution struct {
	Token         string    `json:"token"`
	FirstTouchAt  time.Time `json:"first_touch_at"`
	LastTouchAt   time.Time `json:"last_touch_at"`
	FirstURL      string    `json:"first_url"`
	LastURL       string    `json:"last_url"`
	FirstReferrer *string   `json:"first_referrer,omitempty"`
	LastReferrer  *string   `json:"last_referrer,omitempty"`
	IP            *string   `json:"ip,omitempty"`
	UserAgent     *string   `json:"user_agent,omitempty"`

	UTMSource   *string `json:"utm_source,omitempty"`
	UTMMedium   *string `json:"utm_medium,omitempty"`
	UTMCampaign *string `json:"utm_campaign,omitempty"`
	UTMTerm     *string `json:"utm_term,omitempty"`
	UTMContent  *string `json:"utm_content,omitempty"`

	GCLID  *string `json:"gclid,omitempty"`
	GBRAID *string `json:"gbraid,omitempty"`
	WBRAID *string `json:"wbraid,omitempty"`
	DCLID  *string `json:"dclid,omitempty"`

	FBCLID *string `json:"fbclid,omitempty"`
	FBP    *string `json:"fbp,omitempty"`
	FBC    *string `json:"fbc,omitempty"`

	TTCLID  *string `json:"ttclid,omitempty"`
	MSCLKID *string `json:"msclkid,omitempty"`

	HubspotUTK *string `json:"hubspotutk,omitempty"`

	VisitorID string `json:"visitor_id"`
	SessionID string `json:"session_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AttributionTouch carries one beacon's worth of marketing signals. Empty
// strings mean "not provided" and never erase a previously recorded value.
type AttributionTouch struct {
	URL       string
	Referrer  string
	IP        string
	UserAgent string

	UTMSource   string
	UTMMedium   string
	UTMCampaign string
	UTMTerm     string
	UTMContent  string

	GCLID  string
	GBRAID string
	WBRAID string
	DCLID  string

	FBCLID string
	FBP    string
	FBC    string

	TTCLID  string
	MSCLKID string

	HubspotUTK string
}

// NewAttribution creates the first-touch record for an unseen token.
func NewAttribution(token string, now time.Time, touch AttributionTouch, visitorID, sessionID string) *Attribution {
	a := &Attribution{
		Token:        token,
		FirstTouchAt: now,
		LastTouchAt:  now,
		FirstURL:     touch.URL,
		LastURL:      touch.URL,
		VisitorID:    visitorID,
		SessionID:    sessionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if ref := strings.TrimSpace(touch.Referrer); ref != "" {
		a.FirstReferrer = &ref
		a.LastReferrer = &ref
	}
	a.mergeParams(touch)
	a.IP = mergeParam(a.IP, touch.IP)
	a.UserAgent = mergeParam(a.UserAgent, touch.UserAgent)
	return a
}

// Merge applies a subsequent touch. First-touch fields are left alone,
// last-touch fields are overwritten, and each marketing parameter keeps its
// previous value unless the touch carries a non-empty replacement.
func (a *Attribution) Merge(now time.Time, touch AttributionTouch, visitorID, sessionID string) {
	a.LastTouchAt = now
	a.LastURL = touch.URL
	if ref := strings.TrimSpace(touch.Referrer); ref != "" {
		a.LastReferrer = &ref
	} else {
		a.LastReferrer = nil
	}
	a.mergeParams(touch)
	a.IP = mergeParam(a.IP, touch.IP)
	a.UserAgent = mergeParam(a.UserAgent, touch.UserAgent)
	a.VisitorID = visitorID
	a.SessionID = sessionID
	a.UpdatedAt = now
}

func (a *Attribution) mergeParams(touch AttributionTouch) {
	a.UTMSource = mergeParam(a.UTMSource, touch.UTMSource)
	a.UTMMedium = mergeParam(a.UTMMedium, touch.UTMMedium)
	a.UTMCampaign = mergeParam(a.UTMCampaign, touch.UTMCampaign)
	a.UTMTerm = mergeParam(a.UTMTerm, touch.UTMTerm)
	a.UTMContent = mergeParam(a.UTMContent, touch.UTMContent)

	a.GCLID = mergeParam(a.GCLID, touch.GCLID)
	a.GBRAID = mergeParam(a.GBRAID, touch.GBRAID)
	a.WBRAID = mergeParam(a.WBRAID, touch.WBRAID)
	a.DCLID = mergeParam(a.DCLID, touch.DCLID)

	a.FBCLID = mergeParam(a.FBCLID, touch.FBCLID)
	a.FBP = mergeParam(a.FBP, touch.FBP)
	a.FBC = mergeParam(a.FBC, touch.FBC)

	a.TTCLID = mergeParam(a.TTCLID, touch.TTCLID)
	a.MSCLKID = mergeParam(a.MSCLKID, touch.MSCLKID)

	a.HubspotUTK = mergeParam(a.HubspotUTK, touch.HubspotUTK)
}

// mergeParam implements "update if newly provided and non-empty after
// trimming, else keep previous".
func mergeParam(previous *string, provided string) *string {
	trimmed := strings.TrimSpace(provided)
	if trimmed != "" {
		return &trimmed
	}
	return previous
}

// VisitorRepository persists visitors with touch-on-write upserts.
type VisitorRepository interface {
	Upsert(ctx context.Context, id string, now time.Time) error
}

// SessionRepository persists sessions.
type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*Session, error)
	Upsert(ctx context.Context, session *Session, now time.Time) error
}

// AttributionRepository persists attributions keyed by token.
type AttributionRepository interface {
	GetByToken(ctx context.Context, token string) (*Attribution, error)
	Save(ctx context.Context, attribution *Attribution) error
}

// ResolvedIdentity is the (visitor, session, attribution) triple handed back
// to the browser.
type ResolvedIdentity struct {
	VisitorID        string
	SessionID        string
	AttributionToken string
}

// IdentityServiceInterface stitches browser signals into the identity model.
type IdentityServiceInterface interface {
	ResolveOrCreate(ctx context.Context, existingVisitorID, existingSessionID, existingToken string, now time.Time, ip, userAgent string) (*ResolvedIdentity, error)
	MergeAttribution(ctx context.Context, token string, now time.Time, touch AttributionTouch, visitorID, sessionID string) error
}
