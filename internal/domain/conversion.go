package domain

import (
	"context"
	"net/http"
	"time"
)

//go:generate mockgen -destination mocks/mock_services.go -package mocks github.com/virtuacademy/touchpoint/internal/domain HTTPClient,AppointmentFetcher,DeliveryEnqueuer,PlatformAdapter,IdentityServiceInterface,WebhookServiceInterface,DeliveryServiceInterface

// HTTPClient defines the interface for outbound HTTP operations so vendor
// calls can be mocked in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ConversionInput is the joined view of canonical event, appointment,
// attribution and session that every platform adapter builds its request
// from. Appointment-level contact fields and click ids take precedence over
// attribution-level ones; the delivery worker resolves that before adapters
// run.
type ConversionInput struct {
	EventID   string
	EventName EventName
	EventTime time.Time

	Value    *float64
	Currency string

	AppointmentID    string
	AttributionToken string

	Email     string
	Phone     string
	FirstName string
	LastName  string

	IP        string
	UserAgent string

	EventSourceURL string
	PageReferrer   string

	GCLID  string
	GBRAID string
	WBRAID string
	FBC    string
	FBP    string
	TTCLID string

	HubspotUTK string

	UTMSource   string
	UTMMedium   string
	UTMCampaign string
}

// SendResult is the tagged outcome shared by all adapters: either skipped
// with a reason, or attempted with the vendor's verdict.
type SendResult struct {
	Skipped    bool   `json:"skipped"`
	SkipReason string `json:"skip_reason,omitempty"`

	OK           bool   `json:"ok"`
	StatusCode   int    `json:"status_code,omitempty"`
	ResponseBody string `json:"response_body,omitempty"`
	RequestBody  string `json:"request_body,omitempty"`
}

// Skip builds a skipped result.
func Skip(reason string) *SendResult {
	return &SendResult{Skipped: true, SkipReason: reason}
}

// PlatformAdapter is one conversion target. Send never returns an error:
// missing credentials, unusable input or unmapped event names come back as
// skipped, vendor failures as OK=false with the response preserved.
type PlatformAdapter interface {
	Platform() Platform
	Send(ctx context.Context, input *ConversionInput) *SendResult
}
