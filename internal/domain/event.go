package domain

import (
	"context"
	"time"
)

// EventName enumerates the conversion-worthy business occurrences.
type EventName string

const (
	EventTrialBooked        EventName = "TRIAL_BOOKED"
	EventTrialRescheduled   EventName = "TRIAL_RESCHEDULED"
	EventTrialCanceled      EventName = "TRIAL_CANCELED"
	EventAppointmentUpdated EventName = "APPOINTMENT_UPDATED"
)

// DefaultCurrency is attached to canonical events that carry no explicit
// monetary value.
const DefaultCurrency = "USD"

// CanonicalEvent is the platform-agnostic representation of a conversion.
// EventID is deliberately the provider appointment id so repeated deliveries
// of the same appointment state collapse to one dedupe key at every platform.
// Rows are immutable after creation.
type CanonicalEvent struct {
	ID               string    `json:"id"`
	Name             EventName `json:"name"`
	EventTime        time.Time `json:"event_time"`
	AppointmentID    *string   `json:"appointment_id,omitempty"`
	AttributionToken *string   `json:"attribution_token,omitempty"`
	Value            *float64  `json:"value,omitempty"`
	Currency         string    `json:"currency"`
	EventID          string    `json:"event_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// CanonicalEventRepository persists canonical events.
type CanonicalEventRepository interface {
	Create(ctx context.Context, event *CanonicalEvent) error
	GetByID(ctx context.Context, id string) (*CanonicalEvent, error)
}

// DeliveryEnqueuer hands a canonical event id to the queue for asynchronous
// delivery. At-least-once; the queue's own retry policy re-invokes the job.
type DeliveryEnqueuer interface {
	EnqueueDelivery(ctx context.Context, canonicalEventID string) error
}
