package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/pkg/logger"
)

const acuityAPIBaseURL = "https://acuityscheduling.com/api/v1"

// AcuityService fetches authoritative appointment state from the scheduling
// provider. Webhook payloads carry only ids; everything else comes from here.
type AcuityService struct {
	httpClient domain.HTTPClient
	cfg        *config.AcuityConfig
	baseURL    string
	logger     logger.Logger
}

func NewAcuityService(httpClient domain.HTTPClient, cfg *config.AcuityConfig, logger logger.Logger) *AcuityService {
	return &AcuityService{
		httpClient: httpClient,
		cfg:        cfg,
		baseURL:    acuityAPIBaseURL,
		logger:     logger,
	}
}

var _ domain.AppointmentFetcher = (*AcuityService)(nil)

// FetchAppointment retrieves the appointment with intake form answers
// included. pastFormAnswers=true keeps answers visible after reschedules.
func (s *AcuityService) FetchAppointment(ctx context.Context, appointmentID string) (*domain.AcuityAppointment, error) {
	if s.cfg.UserID == "" || s.cfg.APIKey == "" {
		return nil, fmt.Errorf("acuity credentials are not configured")
	}

	reqURL := fmt.Sprintf("%s/appointments/%s?pastFormAnswers=true", s.baseURL, url.PathEscape(appointmentID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", s.basicAuth())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Operation: "acuity fetch", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{Operation: "acuity fetch", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.WithFields(map[string]interface{}{
			"appointment_id": appointmentID,
			"status_code":    resp.StatusCode,
		}).Error("Acuity appointment fetch failed")
		return nil, &domain.UpstreamError{
			Operation: "acuity fetch",
			Err:       fmt.Errorf("status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var appointment domain.AcuityAppointment
	if err := json.Unmarshal(body, &appointment); err != nil {
		return nil, &domain.UpstreamError{Operation: "acuity fetch", Err: fmt.Errorf("invalid response body: %w", err)}
	}
	return &appointment, nil
}

func (s *AcuityService) basicAuth() string {
	credentials := base64.StdEncoding.EncodeToString([]byte(s.cfg.UserID + ":" + s.cfg.APIKey))
	return "Basic " + credentials
}
