package service

import (
	"context"
	"fmt"
	"time"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/pkg/logger"
)

// defaultEventSourceURL is attached to conversions whose attribution carries
// no landing URL.
const defaultEventSourceURL = "https://virtu.academy"

// DeliveryService attempts every non-terminal delivery row of a canonical
// event. A failure on one platform never blocks the others, and terminal rows
// are never re-sent, so the queue may invoke it any number of times.
type DeliveryService struct {
	eventRepo       domain.CanonicalEventRepository
	deliveryRepo    domain.DeliveryRepository
	appointmentRepo domain.AppointmentRepository
	attributionRepo domain.AttributionRepository
	sessionRepo     domain.SessionRepository
	adapters        map[domain.Platform]domain.PlatformAdapter
	cfg             *config.Config
	logger          logger.Logger
}

func NewDeliveryService(
	eventRepo domain.CanonicalEventRepository,
	deliveryRepo domain.DeliveryRepository,
	appointmentRepo domain.AppointmentRepository,
	attributionRepo domain.AttributionRepository,
	sessionRepo domain.SessionRepository,
	adapters []domain.PlatformAdapter,
	cfg *config.Config,
	logger logger.Logger,
) *DeliveryService {
	byPlatform := make(map[domain.Platform]domain.PlatformAdapter, len(adapters))
	for _, adapter := range adapters {
		byPlatform[adapter.Platform()] = adapter
	}
	return &DeliveryService{
		eventRepo:       eventRepo,
		deliveryRepo:    deliveryRepo,
		appointmentRepo: appointmentRepo,
		attributionRepo: attributionRepo,
		sessionRepo:     sessionRepo,
		adapters:        byPlatform,
		cfg:             cfg,
		logger:          logger,
	}
}

var _ domain.DeliveryServiceInterface = (*DeliveryService)(nil)

func (s *DeliveryService) ProcessEvent(ctx context.Context, canonicalEventID string) error {
	event, err := s.eventRepo.GetByID(ctx, canonicalEventID)
	if err != nil {
		return err
	}

	input, err := s.buildInput(ctx, event)
	if err != nil {
		return err
	}

	deliveries, err := s.deliveryRepo.ListByEvent(ctx, canonicalEventID)
	if err != nil {
		return fmt.Errorf("failed to list deliveries: %w", err)
	}

	for _, delivery := range deliveries {
		if delivery.Status.Terminal() {
			continue
		}
		s.attempt(ctx, delivery, input)
	}
	return nil
}

// attempt runs one adapter and records the outcome. Errors are contained to
// the row: a panic-free adapter plus a failed RecordAttempt still leaves the
// row retry-eligible.
func (s *DeliveryService) attempt(ctx context.Context, delivery *domain.Delivery, input *domain.ConversionInput) {
	now := time.Now().UTC()

	var result *domain.SendResult
	if s.cfg.IsMockOutbound() {
		result = &domain.SendResult{OK: true, ResponseBody: "mock_" + string(delivery.Platform)}
	} else if adapter, ok := s.adapters[delivery.Platform]; ok {
		result = adapter.Send(ctx, input)
	} else {
		result = domain.Skip("no adapter for platform")
	}

	attempt := domain.DeliveryAttempt{Status: domain.DeliveryStatusFailed}
	switch {
	case result.Skipped:
		attempt.Status = domain.DeliveryStatusSkipped
		attempt.ResponseBody = &result.SkipReason
	case result.OK:
		attempt.Status = domain.DeliveryStatusSuccess
	}
	if !result.Skipped {
		if result.StatusCode != 0 {
			attempt.ResponseCode = &result.StatusCode
		}
		if result.ResponseBody != "" {
			attempt.ResponseBody = &result.ResponseBody
		}
		if result.RequestBody != "" {
			attempt.RequestBody = &result.RequestBody
		}
	}

	if err := s.deliveryRepo.RecordAttempt(ctx, delivery.ID, now, attempt); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"delivery_id": delivery.ID,
			"platform":    string(delivery.Platform),
			"error":       err.Error(),
		}).Error("Failed to record delivery attempt")
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"delivery_id": delivery.ID,
		"platform":    string(delivery.Platform),
		"status":      string(attempt.Status),
	}).Info("Delivery attempted")
}

// buildInput joins the canonical event with its appointment, attribution and
// session. Appointment-level click ids and contact fields win over
// attribution-level ones; the session contributes the first-seen IP and user
// agent.
func (s *DeliveryService) buildInput(ctx context.Context, event *domain.CanonicalEvent) (*domain.ConversionInput, error) {
	input := &domain.ConversionInput{
		EventID:        event.EventID,
		EventName:      event.Name,
		EventTime:      event.EventTime,
		Value:          event.Value,
		Currency:       event.Currency,
		EventSourceURL: defaultEventSourceURL,
	}
	if event.AppointmentID != nil {
		input.AppointmentID = *event.AppointmentID
	}
	if event.AttributionToken != nil {
		input.AttributionToken = *event.AttributionToken
	}

	var appointment *domain.Appointment
	if event.AppointmentID != nil {
		var err error
		appointment, err = s.appointmentRepo.GetByID(ctx, *event.AppointmentID)
		if err != nil && !domain.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load appointment: %w", err)
		}
	}

	var attribution *domain.Attribution
	if event.AttributionToken != nil {
		var err error
		attribution, err = s.attributionRepo.GetByToken(ctx, *event.AttributionToken)
		if err != nil && !domain.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load attribution: %w", err)
		}
	}

	if attribution != nil {
		if attribution.LastURL != "" {
			input.EventSourceURL = attribution.LastURL
		}
		input.PageReferrer = deref(attribution.LastReferrer)
		input.GCLID = deref(attribution.GCLID)
		input.GBRAID = deref(attribution.GBRAID)
		input.WBRAID = deref(attribution.WBRAID)
		input.FBC = deref(attribution.FBC)
		input.FBP = deref(attribution.FBP)
		input.TTCLID = deref(attribution.TTCLID)
		input.HubspotUTK = deref(attribution.HubspotUTK)
		input.UTMSource = deref(attribution.UTMSource)
		input.UTMMedium = deref(attribution.UTMMedium)
		input.UTMCampaign = deref(attribution.UTMCampaign)

		if attribution.SessionID != "" {
			session, err := s.sessionRepo.GetByID(ctx, attribution.SessionID)
			if err != nil && !domain.IsNotFound(err) {
				return nil, fmt.Errorf("failed to load session: %w", err)
			}
			if session != nil {
				input.IP = deref(session.IPFirst)
				input.UserAgent = deref(session.UAFirst)
			}
		}
	}

	if appointment != nil {
		input.Email = deref(appointment.Email)
		input.Phone = deref(appointment.Phone)
		input.FirstName = deref(appointment.FirstName)
		input.LastName = deref(appointment.LastName)
		if v := deref(appointment.GCLID); v != "" {
			input.GCLID = v
		}
		if v := deref(appointment.TTCLID); v != "" {
			input.TTCLID = v
		}
		if v := deref(appointment.FBP); v != "" {
			input.FBP = v
		}
		if v := deref(appointment.FBC); v != "" {
			input.FBC = v
		}
	}

	return input, nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
