package domain

import (
	"context"
	"time"
)

// WebhookSourceAcuity identifies the scheduling provider.
const WebhookSourceAcuity = "acuity"

// InboundWebhook is the dedupe/audit record for one raw webhook body.
// Uniqueness on BodyHash is what makes redelivery of the identical payload a
// no-op.
type InboundWebhook struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Action     string    `json:"action"`
	ExternalID string    `json:"external_id"`
	BodyRaw    string    `json:"body_raw"`
	BodyHash   string    `json:"body_hash"`
	CreatedAt  time.Time `json:"created_at"`
}

// InboundWebhookRepository persists audit rows. Insert reports inserted=false
// on a hash conflict instead of an error, which the receiver treats as
// "already handled". Delete releases the hash when processing failed before
// any durable state was written, so a provider retry gets through.
type InboundWebhookRepository interface {
	Insert(ctx context.Context, webhook *InboundWebhook) (inserted bool, err error)
	Delete(ctx context.Context, id string) error
}

// WebhookResult is what the receiver reports back to the provider.
type WebhookResult struct {
	Deduped          bool    `json:"deduped,omitempty"`
	CanonicalEventID string  `json:"canonicalEventId,omitempty"`
	EventName        string  `json:"eventName,omitempty"`
	AttributionToken *string `json:"vaAttrib,omitempty"`
	EventID          string  `json:"eventId,omitempty"`
}

// WebhookServiceInterface runs the inbound webhook pipeline.
type WebhookServiceInterface interface {
	ProcessWebhook(ctx context.Context, rawBody []byte, signature string) (*WebhookResult, error)
}
