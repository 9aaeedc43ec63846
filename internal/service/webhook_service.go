package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/pkg/crypto"
	"github.com/virtuacademy/touchpoint/pkg/logger"
)

// WebhookService runs the inbound pipeline for scheduling provider webhooks:
// signature check, dedupe, provider fetch, snapshot upsert, event
// classification, delivery fan-out and enqueue.
type WebhookService struct {
	webhookRepo     domain.InboundWebhookRepository
	appointmentRepo domain.AppointmentRepository
	eventRepo       domain.CanonicalEventRepository
	deliveryRepo    domain.DeliveryRepository
	fetcher         domain.AppointmentFetcher
	enqueuer        domain.DeliveryEnqueuer
	cfg             *config.AcuityConfig
	logger          logger.Logger
}

func NewWebhookService(
	webhookRepo domain.InboundWebhookRepository,
	appointmentRepo domain.AppointmentRepository,
	eventRepo domain.CanonicalEventRepository,
	deliveryRepo domain.DeliveryRepository,
	fetcher domain.AppointmentFetcher,
	enqueuer domain.DeliveryEnqueuer,
	cfg *config.AcuityConfig,
	logger logger.Logger,
) *WebhookService {
	return &WebhookService{
		webhookRepo:     webhookRepo,
		appointmentRepo: appointmentRepo,
		eventRepo:       eventRepo,
		deliveryRepo:    deliveryRepo,
		fetcher:         fetcher,
		enqueuer:        enqueuer,
		cfg:             cfg,
		logger:          logger,
	}
}

var _ domain.WebhookServiceInterface = (*WebhookService)(nil)

// webhookNotification is the parsed envelope of a provider notification.
// Acuity posts form-urlencoded bodies; JSON is accepted as well for manual
// replays.
type webhookNotification struct {
	Action     string
	ExternalID string
}

func parseWebhookBody(rawBody []byte) (*webhookNotification, error) {
	trimmed := strings.TrimSpace(string(rawBody))
	if trimmed == "" {
		return nil, domain.NewValidationError("empty webhook body")
	}

	if strings.HasPrefix(trimmed, "{") {
		parsed := gjson.Parse(trimmed)
		if !parsed.IsObject() {
			return nil, domain.NewValidationError("invalid JSON body")
		}
		n := &webhookNotification{
			Action:     parsed.Get("action").String(),
			ExternalID: parsed.Get("id").String(),
		}
		if n.Action == "" {
			n.Action = "unknown"
		}
		return n, nil
	}

	form, err := url.ParseQuery(trimmed)
	if err != nil {
		return nil, domain.NewValidationError("invalid form body")
	}
	n := &webhookNotification{
		Action:     form.Get("action"),
		ExternalID: form.Get("id"),
	}
	if n.Action == "" {
		n.Action = "unknown"
	}
	return n, nil
}

// VerifySignature checks the provider HMAC over the exact raw body bytes.
func (s *WebhookService) VerifySignature(rawBody []byte, signature string) bool {
	if s.cfg.APIKey == "" {
		return false
	}
	return crypto.VerifyHMAC256Base64(rawBody, s.cfg.APIKey, signature)
}

func (s *WebhookService) ProcessWebhook(ctx context.Context, rawBody []byte, signature string) (*domain.WebhookResult, error) {
	if !s.VerifySignature(rawBody, signature) {
		return nil, &domain.AuthError{Message: "invalid webhook signature"}
	}

	notification, err := parseWebhookBody(rawBody)
	if err != nil {
		return nil, err
	}
	if notification.ExternalID == "" {
		return nil, domain.NewValidationError("missing appointment id")
	}

	now := time.Now().UTC()
	audit := &domain.InboundWebhook{
		ID:         crypto.RandomID(),
		Source:     domain.WebhookSourceAcuity,
		Action:     notification.Action,
		ExternalID: notification.ExternalID,
		BodyRaw:    string(rawBody),
		BodyHash:   crypto.SHA256Hex(string(rawBody)),
		CreatedAt:  now,
	}
	inserted, err := s.webhookRepo.Insert(ctx, audit)
	if err != nil {
		return nil, fmt.Errorf("failed to record webhook: %w", err)
	}
	if !inserted {
		s.logger.WithField("external_id", notification.ExternalID).Info("Duplicate webhook payload ignored")
		return &domain.WebhookResult{Deduped: true}, nil
	}

	appointment, err := s.fetcher.FetchAppointment(ctx, notification.ExternalID)
	if err != nil {
		s.releaseAudit(ctx, audit.ID)
		return nil, err
	}

	snapshot := appointment.Snapshot(string(rawBody))
	s.applyIntakeFields(appointment, snapshot)

	if err := s.appointmentRepo.Upsert(ctx, snapshot); err != nil {
		s.releaseAudit(ctx, audit.ID)
		return nil, fmt.Errorf("failed to upsert appointment: %w", err)
	}

	eventName := classifyEvent(s.cfg, appointment, notification.Action)

	event := &domain.CanonicalEvent{
		ID:            crypto.RandomID(),
		Name:          eventName,
		EventTime:     now,
		AppointmentID: &snapshot.ID,
		Currency:      domain.DefaultCurrency,
		EventID:       snapshot.ID,
		CreatedAt:     now,
	}
	if snapshot.AttributionToken != nil {
		event.AttributionToken = snapshot.AttributionToken
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.releaseAudit(ctx, audit.ID)
		return nil, fmt.Errorf("failed to create canonical event: %w", err)
	}

	if err := s.deliveryRepo.CreateForEvent(ctx, event.ID, domain.AllPlatforms); err != nil {
		s.releaseAudit(ctx, audit.ID)
		return nil, fmt.Errorf("failed to create deliveries: %w", err)
	}

	// Enqueue failure is not fatal: the rows are durable and a later
	// replay will pick them up.
	if err := s.enqueuer.EnqueueDelivery(ctx, event.ID); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"canonical_event_id": event.ID,
			"error":              err.Error(),
		}).Error("Failed to enqueue delivery job")
	}

	s.logger.WithFields(map[string]interface{}{
		"canonical_event_id": event.ID,
		"event_name":         string(eventName),
		"appointment_id":     snapshot.ID,
	}).Info("Webhook processed")

	return &domain.WebhookResult{
		CanonicalEventID: event.ID,
		EventName:        string(eventName),
		AttributionToken: event.AttributionToken,
		EventID:          event.EventID,
	}, nil
}

// releaseAudit deletes the dedupe row after a pipeline failure so the
// provider's retry of the same body reprocesses instead of being swallowed
// as a duplicate.
func (s *WebhookService) releaseAudit(ctx context.Context, auditID string) {
	if err := s.webhookRepo.Delete(ctx, auditID); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"webhook_id": auditID,
			"error":      err.Error(),
		}).Error("Failed to release webhook audit row")
	}
}

// applyIntakeFields copies the attribution pass-through values out of the
// configured intake form fields. A field id of 0 is unconfigured and skipped.
func (s *WebhookService) applyIntakeFields(appointment *domain.AcuityAppointment, snapshot *domain.Appointment) {
	set := func(fieldID int64, target **string) {
		if fieldID == 0 {
			return
		}
		if value := appointment.IntakeValue(fieldID); value != "" {
			*target = &value
		}
	}
	set(s.cfg.FieldAttributionID, &snapshot.AttributionToken)
	set(s.cfg.FieldGCLIDID, &snapshot.GCLID)
	set(s.cfg.FieldTTCLIDID, &snapshot.TTCLID)
	set(s.cfg.FieldFBPID, &snapshot.FBP)
	set(s.cfg.FieldFBCID, &snapshot.FBC)
}

// classifyEvent maps the provider action and appointment state onto a
// canonical event name. Non-trial appointment types always classify as
// APPOINTMENT_UPDATED.
func classifyEvent(cfg *config.AcuityConfig, appointment *domain.AcuityAppointment, action string) domain.EventName {
	typeID := ""
	if appointment.AppointmentTypeID != 0 {
		typeID = fmt.Sprintf("%d", appointment.AppointmentTypeID)
	}
	if !cfg.IsTrialType(typeID) {
		return domain.EventAppointmentUpdated
	}
	switch {
	case appointment.Canceled || action == "canceled":
		return domain.EventTrialCanceled
	case action == "rescheduled":
		return domain.EventTrialRescheduled
	default:
		return domain.EventTrialBooked
	}
}
