package domain

import (
	"context"
	"time"
)

// Platform enumerates the downstream conversion targets.
type Platform string

const (
	PlatformMeta      Platform = "META"
	PlatformGoogleAds Platform = "GOOGLE_ADS"
	PlatformTikTok    Platform = "TIKTOK"
	PlatformHubSpot   Platform = "HUBSPOT"
)

// AllPlatforms is the fan-out set: one Delivery row per platform per
// canonical event.
var AllPlatforms = []Platform{PlatformMeta, PlatformHubSpot, PlatformGoogleAds, PlatformTikTok}

// DeliveryStatus is the per-(event,platform) state machine. SUCCESS and
// SKIPPED are terminal; PENDING and FAILED are retry-eligible.
type DeliveryStatus string

const (
	DeliveryStatusPending DeliveryStatus = "PENDING"
	DeliveryStatusSuccess DeliveryStatus = "SUCCESS"
	DeliveryStatusFailed  DeliveryStatus = "FAILED"
	DeliveryStatusSkipped DeliveryStatus = "SKIPPED"
)

// Terminal reports whether a row must not be re-attempted.
func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryStatusSuccess || s == DeliveryStatusSkipped
}

// Delivery is one row per (CanonicalEvent, platform) pair.
type Delivery struct {
	ID               string         `json:"id"`
	CanonicalEventID string         `json:"canonical_event_id"`
	Platform         Platform       `json:"platform"`
	Status           DeliveryStatus `json:"status"`
	Attempts         int            `json:"attempts"`
	LastAttemptAt    *time.Time     `json:"last_attempt_at,omitempty"`
	ResponseCode     *int           `json:"response_code,omitempty"`
	ResponseBody     *string        `json:"response_body,omitempty"`
	RequestBody      *string        `json:"request_body,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// DeliveryAttempt is the write-back of one adapter call.
type DeliveryAttempt struct {
	Status       DeliveryStatus
	ResponseCode *int
	ResponseBody *string
	RequestBody  *string
}

// DeliveryRepository owns delivery rows. CreateForEvent is duplicate-safe:
// inserting an existing (event, platform) pair is a no-op.
type DeliveryRepository interface {
	CreateForEvent(ctx context.Context, canonicalEventID string, platforms []Platform) error
	ListByEvent(ctx context.Context, canonicalEventID string) ([]*Delivery, error)
	RecordAttempt(ctx context.Context, deliveryID string, now time.Time, attempt DeliveryAttempt) error
}

// DeliveryServiceInterface attempts every pending delivery of one canonical
// event. Safe to re-invoke any number of times.
type DeliveryServiceInterface interface {
	ProcessEvent(ctx context.Context, canonicalEventID string) error
}
