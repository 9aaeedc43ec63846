package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/pkg/logger"
	"github.com/virtuacademy/touchpoint/pkg/normalize"
)

const tiktokEventsAPIURL = "https://business-api.tiktok.com/open_api/v1.3/event/track/"

var tiktokEventNameDefaults = map[string]string{
	string(domain.EventTrialBooked):        "SubmitForm",
	string(domain.EventTrialRescheduled):   "SubmitForm",
	string(domain.EventTrialCanceled):      "SubmitForm",
	string(domain.EventAppointmentUpdated): "SubmitForm",
}

// TikTokService sends conversions to the TikTok Events API.
type TikTokService struct {
	httpClient     domain.HTTPClient
	cfg            *config.TikTokConfig
	defaultPhoneCC string
	baseURL        string
	logger         logger.Logger
}

func NewTikTokService(httpClient domain.HTTPClient, cfg *config.TikTokConfig, defaultPhoneCC string, logger logger.Logger) *TikTokService {
	return &TikTokService{
		httpClient:     httpClient,
		cfg:            cfg,
		defaultPhoneCC: defaultPhoneCC,
		baseURL:        tiktokEventsAPIURL,
		logger:         logger,
	}
}

var _ domain.PlatformAdapter = (*TikTokService)(nil)

func (s *TikTokService) Platform() domain.Platform {
	return domain.PlatformTikTok
}

func (s *TikTokService) resolveEventName(canonical domain.EventName) string {
	if mapped, ok := s.cfg.EventNames[string(canonical)]; ok {
		return mapped
	}
	if s.cfg.EventName != "" {
		return s.cfg.EventName
	}
	if len(s.cfg.EventNames) > 0 {
		return ""
	}
	return tiktokEventNameDefaults[string(canonical)]
}

func (s *TikTokService) Send(ctx context.Context, input *domain.ConversionInput) *domain.SendResult {
	if s.cfg.PixelCode == "" || s.cfg.AccessToken == "" {
		return domain.Skip("missing TikTok pixel credentials")
	}
	eventName := s.resolveEventName(input.EventName)
	if eventName == "" {
		return domain.Skip("no TikTok event name mapped for " + string(input.EventName))
	}

	user := s.buildUser(input)
	if len(user) == 0 && input.TTCLID == "" {
		return domain.Skip("no usable user data or click id")
	}

	page := map[string]interface{}{"url": input.EventSourceURL}
	if input.PageReferrer != "" {
		page["referrer"] = input.PageReferrer
	}

	event := map[string]interface{}{
		"event":      eventName,
		"event_time": normalize.ToUnixSeconds(input.EventTime),
		"event_id":   input.EventID,
		"user":       user,
		"page":       page,
	}
	if input.AppointmentID != "" {
		event["properties"] = map[string]interface{}{"appointment_id": input.AppointmentID}
	}

	payload := map[string]interface{}{
		"event_source":    "web",
		"event_source_id": s.cfg.PixelCode,
		"data":            []interface{}{event},
	}

	requestBody, err := json.Marshal(payload)
	if err != nil {
		return &domain.SendResult{OK: false, ResponseBody: fmt.Sprintf("failed to encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(requestBody))
	if err != nil {
		return &domain.SendResult{OK: false, ResponseBody: err.Error(), RequestBody: string(requestBody)}
	}
	req.Header.Set("Access-Token", s.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &domain.SendResult{OK: false, ResponseBody: err.Error(), RequestBody: string(requestBody)}
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	// TikTok answers HTTP 200 with a non-zero "code" on failure.
	code := gjson.GetBytes(body, "code")
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300 && code.Exists() && code.Int() == 0

	return &domain.SendResult{
		OK:           ok,
		StatusCode:   resp.StatusCode,
		ResponseBody: string(body),
		RequestBody:  string(requestBody),
	}
}

func (s *TikTokService) buildUser(input *domain.ConversionInput) map[string]interface{} {
	user := map[string]interface{}{}
	if email := normalize.Email(input.Email); email != "" {
		user["email"] = normalize.Hash(email)
	}
	if phone := normalize.PhoneE164(input.Phone, s.defaultPhoneCC); phone != "" {
		user["phone"] = normalize.Hash(phone)
	}
	if input.AttributionToken != "" {
		user["external_id"] = normalize.Hash(input.AttributionToken)
	}
	if input.TTCLID != "" {
		user["ttclid"] = input.TTCLID
	}
	if input.IP != "" {
		user["ip"] = input.IP
	}
	if input.UserAgent != "" {
		user["user_agent"] = input.UserAgent
	}
	return user
}
