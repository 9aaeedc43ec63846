package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/pkg/logger"
	"github.com/virtuacademy/touchpoint/pkg/normalize"
)

const (
	googleAdsAPIVersion = "v22"
	googleOAuthTokenURL = "https://oauth2.googleapis.com/token"

	// tokenExpirySkew retires a cached access token a minute early so a
	// token never expires mid-request.
	tokenExpirySkew = time.Minute
)

var nonDigitsRe = regexp.MustCompile(`\D+`)

// GoogleAdsService uploads click conversions through the Google Ads REST
// API, minting OAuth access tokens from the configured refresh token.
type GoogleAdsService struct {
	httpClient     domain.HTTPClient
	cfg            *config.GoogleAdsConfig
	defaultPhoneCC string
	tokenURL       string
	apiBaseURL     string
	logger         logger.Logger

	mu          sync.Mutex
	cachedToken string
	tokenExpiry time.Time
	tokenGroup  singleflight.Group
}

func NewGoogleAdsService(httpClient domain.HTTPClient, cfg *config.GoogleAdsConfig, defaultPhoneCC string, logger logger.Logger) *GoogleAdsService {
	return &GoogleAdsService{
		httpClient:     httpClient,
		cfg:            cfg,
		defaultPhoneCC: defaultPhoneCC,
		tokenURL:       googleOAuthTokenURL,
		apiBaseURL:     "https://googleads.googleapis.com",
		logger:         logger,
	}
}

var _ domain.PlatformAdapter = (*GoogleAdsService)(nil)

func (s *GoogleAdsService) Platform() domain.Platform {
	return domain.PlatformGoogleAds
}

func (s *GoogleAdsService) Send(ctx context.Context, input *domain.ConversionInput) *domain.SendResult {
	customerID := nonDigitsRe.ReplaceAllString(s.cfg.CustomerID, "")
	if s.cfg.DeveloperToken == "" || s.cfg.ClientID == "" || s.cfg.ClientSecret == "" || s.cfg.RefreshToken == "" || customerID == "" {
		return domain.Skip("missing Google Ads credentials")
	}

	actionID := s.resolveConversionAction(input.EventName)
	if actionID == "" {
		return domain.Skip("no conversion action mapped for " + string(input.EventName))
	}

	identifiers := s.buildUserIdentifiers(input)
	gclid := strings.TrimSpace(input.GCLID)
	gbraid := strings.TrimSpace(input.GBRAID)
	wbraid := strings.TrimSpace(input.WBRAID)
	if gclid == "" && gbraid == "" && wbraid == "" && len(identifiers) == 0 {
		return domain.Skip("no click ids or user identifiers")
	}

	conversion := map[string]interface{}{
		"conversionAction":      conversionActionResourceName(customerID, actionID),
		"conversionDateTime":    normalize.OffsetDateTime(input.EventTime, s.cfg.TimeZone, s.cfg.TimeZoneOffset),
		"conversionEnvironment": "WEB",
		"orderId":               input.EventID,
		"consent": map[string]string{
			"adUserData":        "GRANTED",
			"adPersonalization": "GRANTED",
		},
	}
	if input.Value != nil {
		conversion["conversionValue"] = *input.Value
		if input.Currency != "" {
			conversion["currencyCode"] = input.Currency
		}
	}
	if gclid != "" {
		conversion["gclid"] = gclid
	}
	if gbraid != "" {
		conversion["gbraid"] = gbraid
	}
	if wbraid != "" {
		conversion["wbraid"] = wbraid
	}
	if len(identifiers) > 0 {
		conversion["userIdentifiers"] = identifiers
	}
	if input.IP != "" {
		conversion["userIpAddress"] = input.IP
	}

	request := map[string]interface{}{
		"customerId":     customerID,
		"conversions":    []interface{}{conversion},
		"partialFailure": true,
	}
	if jobID := parseJobID(s.cfg.JobID); jobID != "" {
		request["jobId"] = jobID
	}
	if s.cfg.ValidateOnly {
		request["validateOnly"] = true
	}

	requestBody, err := json.Marshal(request)
	if err != nil {
		return &domain.SendResult{OK: false, ResponseBody: fmt.Sprintf("failed to encode request: %v", err)}
	}

	accessToken, err := s.accessToken(ctx)
	if err != nil {
		return &domain.SendResult{OK: false, StatusCode: http.StatusInternalServerError, ResponseBody: err.Error(), RequestBody: string(requestBody)}
	}

	endpoint := fmt.Sprintf("%s/%s/customers/%s:uploadClickConversions", s.apiBaseURL, googleAdsAPIVersion, customerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return &domain.SendResult{OK: false, ResponseBody: err.Error(), RequestBody: string(requestBody)}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", s.cfg.DeveloperToken)
	req.Header.Set("Content-Type", "application/json")
	if login := nonDigitsRe.ReplaceAllString(s.cfg.LoginCustomerID, ""); login != "" {
		req.Header.Set("login-customer-id", login)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &domain.SendResult{OK: false, ResponseBody: err.Error(), RequestBody: string(requestBody)}
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	partialFailure := gjson.GetBytes(body, "partialFailureError")
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300 &&
		(!partialFailure.Exists() || isClickNotFoundOnly(partialFailure))

	return &domain.SendResult{
		OK:           ok,
		StatusCode:   resp.StatusCode,
		ResponseBody: string(body),
		RequestBody:  string(requestBody),
	}
}

// accessToken returns a cached OAuth access token, refreshing it through a
// singleflight group so concurrent deliveries share one token request.
func (s *GoogleAdsService) accessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.cachedToken != "" && time.Now().Before(s.tokenExpiry.Add(-tokenExpirySkew)) {
		token := s.cachedToken
		s.mu.Unlock()
		return token, nil
	}
	s.mu.Unlock()

	result, err, _ := s.tokenGroup.Do("token", func() (interface{}, error) {
		return s.fetchAccessToken(ctx)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (s *GoogleAdsService) fetchAccessToken(ctx context.Context) (string, error) {
	params := url.Values{
		"client_id":     {s.cfg.ClientID},
		"client_secret": {s.cfg.ClientSecret},
		"refresh_token": {s.cfg.RefreshToken},
		"grant_type":    {"refresh_token"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(params.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("oauth token request failed: %w", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("oauth token request failed: %d %s", resp.StatusCode, string(body))
	}

	token := gjson.GetBytes(body, "access_token").String()
	if token == "" {
		return "", fmt.Errorf("oauth token response missing access_token")
	}
	expiresIn := gjson.GetBytes(body, "expires_in").Int()
	if expiresIn <= 0 {
		expiresIn = 3600
	}

	s.mu.Lock()
	s.cachedToken = token
	s.tokenExpiry = time.Now().Add(time.Duration(expiresIn) * time.Second)
	s.mu.Unlock()

	return token, nil
}

func (s *GoogleAdsService) resolveConversionAction(eventName domain.EventName) string {
	if actionID, ok := s.cfg.ConversionActions[string(eventName)]; ok {
		return actionID
	}
	return s.cfg.ConversionAction
}

func (s *GoogleAdsService) buildUserIdentifiers(input *domain.ConversionInput) []map[string]interface{} {
	var identifiers []map[string]interface{}
	if email := normalize.Email(input.Email); email != "" {
		identifiers = append(identifiers, map[string]interface{}{
			"userIdentifierSource": "FIRST_PARTY",
			"hashedEmail":          normalize.Hash(email),
		})
	}
	if phone := normalize.PhoneE164(input.Phone, s.defaultPhoneCC); phone != "" {
		identifiers = append(identifiers, map[string]interface{}{
			"userIdentifierSource": "FIRST_PARTY",
			"hashedPhoneNumber":    normalize.Hash(phone),
		})
	}
	return identifiers
}

// conversionActionResourceName accepts either a bare conversion action id or
// a fully qualified resource name.
func conversionActionResourceName(customerID, value string) string {
	trimmed := strings.TrimSpace(value)
	if strings.Contains(trimmed, "/") {
		return trimmed
	}
	return fmt.Sprintf("customers/%s/conversionActions/%s", customerID, nonDigitsRe.ReplaceAllString(trimmed, ""))
}

// parseJobID validates the configured job id: a non-negative int32 or
// nothing.
func parseJobID(value string) string {
	if value == "" {
		return ""
	}
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || parsed < 0 || parsed >= 1<<31 {
		return ""
	}
	return strconv.FormatInt(parsed, 10)
}

// isClickNotFoundOnly reports whether every error in a partial failure is
// CLICK_NOT_FOUND, which counts as success: the click simply was not
// Google-attributed.
func isClickNotFoundOnly(partialFailure gjson.Result) bool {
	details := partialFailure.Get("details")
	if !details.IsArray() {
		return false
	}
	found := false
	allClickNotFound := true
	details.ForEach(func(_, detail gjson.Result) bool {
		detail.Get("errors").ForEach(func(_, e gjson.Result) bool {
			found = true
			if e.Get("errorCode.conversionUploadError").String() != "CLICK_NOT_FOUND" {
				allClickNotFound = false
			}
			return true
		})
		return true
	})
	return found && allClickNotFound
}
