package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/pkg/logger"
	"github.com/virtuacademy/touchpoint/pkg/normalize"
)

const metaGraphBaseURL = "https://graph.facebook.com"

// metaEventNameDefaults maps canonical event names onto standard pixel
// events when no explicit mapping is configured.
var metaEventNameDefaults = map[string]string{
	string(domain.EventTrialBooked):        "SubmitApplication",
	string(domain.EventTrialRescheduled):   "Schedule",
	string(domain.EventTrialCanceled):      "Cancel",
	string(domain.EventAppointmentUpdated): "Schedule",
}

// MetaService sends conversions to the Meta Conversions API.
type MetaService struct {
	httpClient     domain.HTTPClient
	cfg            *config.MetaConfig
	defaultPhoneCC string
	baseURL        string
	logger         logger.Logger
}

func NewMetaService(httpClient domain.HTTPClient, cfg *config.MetaConfig, defaultPhoneCC string, logger logger.Logger) *MetaService {
	return &MetaService{
		httpClient:     httpClient,
		cfg:            cfg,
		defaultPhoneCC: defaultPhoneCC,
		baseURL:        metaGraphBaseURL,
		logger:         logger,
	}
}

var _ domain.PlatformAdapter = (*MetaService)(nil)

func (s *MetaService) Platform() domain.Platform {
	return domain.PlatformMeta
}

// resolveEventName applies the precedence: explicit per-event mapping, then
// the single-name fallback, then the standard defaults. A configured mapping
// that does not cover the event yields "" so the delivery skips rather than
// firing a wrong pixel event.
func (s *MetaService) resolveEventName(canonical domain.EventName) string {
	if mapped, ok := s.cfg.EventNames[string(canonical)]; ok {
		return mapped
	}
	if s.cfg.EventName != "" {
		return s.cfg.EventName
	}
	if len(s.cfg.EventNames) > 0 {
		return ""
	}
	if mapped, ok := metaEventNameDefaults[string(canonical)]; ok {
		return mapped
	}
	return "Lead"
}

func (s *MetaService) Send(ctx context.Context, input *domain.ConversionInput) *domain.SendResult {
	if s.cfg.PixelID == "" || s.cfg.AccessToken == "" {
		return domain.Skip("missing Meta pixel credentials")
	}
	eventName := s.resolveEventName(input.EventName)
	if eventName == "" {
		return domain.Skip("no Meta event name mapped for " + string(input.EventName))
	}

	userData := s.buildUserData(input)
	if len(userData) == 0 {
		return domain.Skip("no usable user data")
	}

	eventData := map[string]interface{}{
		"event_name":       eventName,
		"event_time":       normalize.ToUnixSeconds(input.EventTime),
		"event_id":         input.EventID,
		"action_source":    "website",
		"event_source_url": input.EventSourceURL,
		"user_data":        userData,
		"custom_data":      s.buildCustomData(input),
	}
	if s.cfg.LDUEnabled {
		eventData["data_processing_options"] = []string{"LDU"}
		eventData["data_processing_options_country"] = 1
		eventData["data_processing_options_state"] = 1000
	} else {
		eventData["data_processing_options"] = []string{}
	}

	payload := map[string]interface{}{
		"data": []interface{}{eventData},
	}
	if s.cfg.TestEventCode != "" {
		payload["test_event_code"] = s.cfg.TestEventCode
	}

	requestBody, err := json.Marshal(payload)
	if err != nil {
		return &domain.SendResult{OK: false, ResponseBody: fmt.Sprintf("failed to encode request: %v", err)}
	}

	endpoint := fmt.Sprintf("%s/%s/%s/events?access_token=%s",
		s.baseURL, s.cfg.APIVersion, url.PathEscape(s.cfg.PixelID), url.QueryEscape(s.cfg.AccessToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return &domain.SendResult{OK: false, ResponseBody: err.Error(), RequestBody: string(requestBody)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &domain.SendResult{OK: false, ResponseBody: err.Error(), RequestBody: string(requestBody)}
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	// A 200 with an error object in the body is still a failure.
	hasError := gjson.GetBytes(body, "error").Exists()
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300 && !hasError

	return &domain.SendResult{
		OK:           ok,
		StatusCode:   resp.StatusCode,
		ResponseBody: string(body),
		RequestBody:  string(requestBody),
	}
}

// buildUserData assembles Meta's user_data match keys. PII is normalized and
// SHA-256 hashed; the pixel cookies, IP and user agent go through plain.
func (s *MetaService) buildUserData(input *domain.ConversionInput) map[string]interface{} {
	userData := map[string]interface{}{}

	if email := normalize.Email(input.Email); email != "" {
		userData["em"] = []string{normalize.Hash(email)}
	}
	if phone := normalize.PhoneForHash(input.Phone, s.defaultPhoneCC); phone != "" {
		userData["ph"] = []string{normalize.Hash(phone)}
	}
	if first := normalize.Name(input.FirstName); first != "" {
		userData["fn"] = []string{normalize.Hash(first)}
	}
	if last := normalize.Name(input.LastName); last != "" {
		userData["ln"] = []string{normalize.Hash(last)}
	}
	if input.AttributionToken != "" {
		userData["external_id"] = []string{normalize.Hash(input.AttributionToken)}
	}
	if input.IP != "" {
		userData["client_ip_address"] = input.IP
	}
	if input.UserAgent != "" {
		userData["client_user_agent"] = input.UserAgent
	}
	if input.FBC != "" {
		userData["fbc"] = input.FBC
	}
	if input.FBP != "" {
		userData["fbp"] = input.FBP
	}
	return userData
}

func (s *MetaService) buildCustomData(input *domain.ConversionInput) map[string]interface{} {
	customData := map[string]interface{}{}
	if input.AppointmentID != "" {
		customData["appointment_id"] = input.AppointmentID
	}
	if input.UTMSource != "" {
		customData["utm_source"] = input.UTMSource
	}
	if input.UTMCampaign != "" {
		customData["utm_campaign"] = input.UTMCampaign
	}
	if input.Value != nil {
		customData["value"] = *input.Value
		if input.Currency != "" {
			customData["currency"] = strings.ToUpper(input.Currency)
		}
	}
	return customData
}
