package service

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/internal/domain/mocks"
	"github.com/virtuacademy/touchpoint/pkg/logger"
)

func httpResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     http.Header{},
	}
}

func metaTestConfig() *config.MetaConfig {
	return &config.MetaConfig{
		PixelID:     "pixel-1",
		AccessToken: "token-1",
		APIVersion:  "v24.0",
	}
}

func conversionInput() *domain.ConversionInput {
	return &domain.ConversionInput{
		EventID:          "12345",
		EventName:        domain.EventTrialBooked,
		EventTime:        time.Unix(1756000000, 0).UTC(),
		Currency:         "USD",
		AppointmentID:    "12345",
		AttributionToken: "tok-1",
		Email:            "janedoe@gmail.com",
		Phone:            "15551234567",
		FirstName:        "Jane",
		LastName:         "Doe",
		IP:               "203.0.113.9",
		UserAgent:        "Mozilla/5.0",
		EventSourceURL:   "https://virtu.academy/trial",
		FBP:              "fb.1.1.2",
		UTMSource:        "google",
	}
}

func TestMetaService_Send_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMetaService(mocks.NewMockHTTPClient(ctrl), &config.MetaConfig{}, "1", logger.NewMockLogger(t))
	result := svc.Send(context.Background(), conversionInput())
	assert.True(t, result.Skipped)
	assert.Contains(t, result.SkipReason, "credentials")
}

func TestMetaService_Send_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)
	svc := NewMetaService(client, metaTestConfig(), "1", logger.NewMockLogger(t))

	var sentBody []byte
	client.EXPECT().Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Contains(t, req.URL.Path, "/v24.0/pixel-1/events")
			sentBody, _ = io.ReadAll(req.Body)
			return httpResponse(200, `{"events_received":1,"fbtrace_id":"abc"}`), nil
		})

	result := svc.Send(context.Background(), conversionInput())
	require.False(t, result.Skipped)
	assert.True(t, result.OK)
	assert.Equal(t, 200, result.StatusCode)

	payload := gjson.ParseBytes(sentBody)
	event := payload.Get("data.0")
	assert.Equal(t, "SubmitApplication", event.Get("event_name").String())
	assert.Equal(t, "12345", event.Get("event_id").String())
	assert.Equal(t, int64(1756000000), event.Get("event_time").Int())
	assert.Equal(t, "website", event.Get("action_source").String())
	assert.Equal(t, "https://virtu.academy/trial", event.Get("event_source_url").String())

	userData := event.Get("user_data")
	// Hashed identifiers are 64-char hex digests.
	assert.Len(t, userData.Get("em.0").String(), 64)
	assert.Len(t, userData.Get("ph.0").String(), 64)
	assert.Equal(t, "203.0.113.9", userData.Get("client_ip_address").String())
	assert.Equal(t, "fb.1.1.2", userData.Get("fbp").String())
	assert.Equal(t, "google", event.Get("custom_data.utm_source").String())
}

func TestMetaService_Send_ErrorBodyOn200(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)
	svc := NewMetaService(client, metaTestConfig(), "1", logger.NewMockLogger(t))

	client.EXPECT().Do(gomock.Any()).
		Return(httpResponse(200, `{"error":{"message":"Invalid parameter","code":100}}`), nil)

	result := svc.Send(context.Background(), conversionInput())
	require.False(t, result.Skipped)
	assert.False(t, result.OK)
}

func TestMetaService_Send_NoUserData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMetaService(mocks.NewMockHTTPClient(ctrl), metaTestConfig(), "1", logger.NewMockLogger(t))

	result := svc.Send(context.Background(), &domain.ConversionInput{
		EventID:   "12345",
		EventName: domain.EventTrialBooked,
		EventTime: time.Now(),
	})
	assert.True(t, result.Skipped)
	assert.Contains(t, result.SkipReason, "user data")
}

func TestMetaService_ResolveEventName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockHTTPClient(ctrl)

	t.Run("defaults", func(t *testing.T) {
		svc := NewMetaService(client, metaTestConfig(), "1", logger.NewMockLogger(t))
		assert.Equal(t, "SubmitApplication", svc.resolveEventName(domain.EventTrialBooked))
		assert.Equal(t, "Cancel", svc.resolveEventName(domain.EventTrialCanceled))
		assert.Equal(t, "Lead", svc.resolveEventName(domain.EventName("SOMETHING_ELSE")))
	})

	t.Run("explicit mapping wins and unmapped events skip", func(t *testing.T) {
		cfg := metaTestConfig()
		cfg.EventNames = map[string]string{"TRIAL_BOOKED": "CompleteRegistration"}
		svc := NewMetaService(client, cfg, "1", logger.NewMockLogger(t))
		assert.Equal(t, "CompleteRegistration", svc.resolveEventName(domain.EventTrialBooked))
		assert.Equal(t, "", svc.resolveEventName(domain.EventTrialCanceled))
	})

	t.Run("single-name fallback", func(t *testing.T) {
		cfg := metaTestConfig()
		cfg.EventName = "Lead"
		svc := NewMetaService(client, cfg, "1", logger.NewMockLogger(t))
		assert.Equal(t, "Lead", svc.resolveEventName(domain.EventTrialCanceled))
	})
}

func TestMetaService_LDU(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)
	cfg := metaTestConfig()
	cfg.LDUEnabled = true
	svc := NewMetaService(client, cfg, "1", logger.NewMockLogger(t))

	var sentBody []byte
	client.EXPECT().Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			sentBody, _ = io.ReadAll(req.Body)
			return httpResponse(200, `{"events_received":1}`), nil
		})

	svc.Send(context.Background(), conversionInput())

	event := gjson.ParseBytes(sentBody).Get("data.0")
	assert.Equal(t, "LDU", event.Get("data_processing_options.0").String())
	assert.Equal(t, int64(1), event.Get("data_processing_options_country").Int())
	assert.Equal(t, int64(1000), event.Get("data_processing_options_state").Int())
}
