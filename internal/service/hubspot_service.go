package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/pkg/logger"
)

const hubspotAPIBaseURL = "https://api.hubapi.com"

// HubSpotService submits trial conversions to a HubSpot form through the
// secure form submissions API, carrying the attribution context as hidden
// form fields.
type HubSpotService struct {
	httpClient domain.HTTPClient
	cfg        *config.HubSpotConfig
	baseURL    string
	logger     logger.Logger
}

func NewHubSpotService(httpClient domain.HTTPClient, cfg *config.HubSpotConfig, logger logger.Logger) *HubSpotService {
	return &HubSpotService{
		httpClient: httpClient,
		cfg:        cfg,
		baseURL:    hubspotAPIBaseURL,
		logger:     logger,
	}
}

var _ domain.PlatformAdapter = (*HubSpotService)(nil)

func (s *HubSpotService) Platform() domain.Platform {
	return domain.PlatformHubSpot
}

func (s *HubSpotService) Send(ctx context.Context, input *domain.ConversionInput) *domain.SendResult {
	if s.cfg.PortalID == "" || s.cfg.FormGUID == "" || s.cfg.AccessToken == "" {
		return domain.Skip("missing HubSpot form credentials")
	}
	if input.Email == "" {
		return domain.Skip("no email to submit")
	}

	fields := []map[string]string{}
	addField := func(name, value string) {
		if value != "" {
			fields = append(fields, map[string]string{"name": name, "value": value})
		}
	}
	addField("email", input.Email)
	addField("acuity_appointment_id", input.AppointmentID)
	addField("va_attrib", input.AttributionToken)
	addField("utm_source", input.UTMSource)
	addField("utm_medium", input.UTMMedium)
	addField("utm_campaign", input.UTMCampaign)
	addField("gclid", input.GCLID)
	addField("ttclid", input.TTCLID)

	submissionContext := map[string]interface{}{}
	if input.HubspotUTK != "" {
		submissionContext["hutk"] = input.HubspotUTK
	}
	if input.EventSourceURL != "" {
		submissionContext["pageUri"] = input.EventSourceURL
	}
	if input.IP != "" {
		submissionContext["ipAddress"] = input.IP
	}

	payload := map[string]interface{}{
		"submittedAt": time.Now().UnixMilli(),
		"fields":      fields,
		"context":     submissionContext,
	}
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return &domain.SendResult{OK: false, ResponseBody: fmt.Sprintf("failed to encode request: %v", err)}
	}

	endpoint := fmt.Sprintf("%s/submissions/v3/integration/secure/submit/%s/%s",
		s.baseURL, url.PathEscape(s.cfg.PortalID), url.PathEscape(s.cfg.FormGUID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return &domain.SendResult{OK: false, ResponseBody: err.Error(), RequestBody: string(requestBody)}
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &domain.SendResult{OK: false, ResponseBody: err.Error(), RequestBody: string(requestBody)}
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	return &domain.SendResult{
		OK:           resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode:   resp.StatusCode,
		ResponseBody: string(body),
		RequestBody:  string(requestBody),
	}
}
