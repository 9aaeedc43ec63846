package service

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/internal/domain/mocks"
	"github.com/virtuacademy/touchpoint/pkg/logger"
)

func tiktokTestConfig() *config.TikTokConfig {
	return &config.TikTokConfig{
		PixelCode:   "pixel-tt",
		AccessToken: "token-tt",
	}
}

func TestTikTokService_Send_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewTikTokService(mocks.NewMockHTTPClient(ctrl), &config.TikTokConfig{}, "1", logger.NewMockLogger(t))
	result := svc.Send(context.Background(), conversionInput())
	assert.True(t, result.Skipped)
}

func TestTikTokService_Send_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)
	svc := NewTikTokService(client, tiktokTestConfig(), "1", logger.NewMockLogger(t))

	input := conversionInput()
	input.TTCLID = "tt-click-1"
	input.PageReferrer = "https://google.com"

	var sentBody []byte
	client.EXPECT().Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "token-tt", req.Header.Get("Access-Token"))
			sentBody, _ = io.ReadAll(req.Body)
			return httpResponse(200, `{"code":0,"message":"OK"}`), nil
		})

	result := svc.Send(context.Background(), input)
	require.False(t, result.Skipped)
	assert.True(t, result.OK)

	payload := gjson.ParseBytes(sentBody)
	assert.Equal(t, "web", payload.Get("event_source").String())
	assert.Equal(t, "pixel-tt", payload.Get("event_source_id").String())

	event := payload.Get("data.0")
	assert.Equal(t, "SubmitForm", event.Get("event").String())
	assert.Equal(t, "12345", event.Get("event_id").String())
	assert.Equal(t, "tt-click-1", event.Get("user.ttclid").String())
	assert.Len(t, event.Get("user.email").String(), 64)
	assert.Len(t, event.Get("user.phone").String(), 64)
	assert.Equal(t, "https://virtu.academy/trial", event.Get("page.url").String())
	assert.Equal(t, "https://google.com", event.Get("page.referrer").String())
}

func TestTikTokService_Send_NonZeroCodeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)
	svc := NewTikTokService(client, tiktokTestConfig(), "1", logger.NewMockLogger(t))

	client.EXPECT().Do(gomock.Any()).
		Return(httpResponse(200, `{"code":40001,"message":"invalid access token"}`), nil)

	result := svc.Send(context.Background(), conversionInput())
	require.False(t, result.Skipped)
	assert.False(t, result.OK)
}

func TestTikTokService_Send_NoUsableData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewTikTokService(mocks.NewMockHTTPClient(ctrl), tiktokTestConfig(), "1", logger.NewMockLogger(t))
	result := svc.Send(context.Background(), &domain.ConversionInput{
		EventID:   "12345",
		EventName: domain.EventTrialBooked,
	})
	assert.True(t, result.Skipped)
}

func TestTikTokService_ResolveEventName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockHTTPClient(ctrl)

	cfg := tiktokTestConfig()
	cfg.EventNames = map[string]string{"TRIAL_BOOKED": "CompleteRegistration"}
	svc := NewTikTokService(client, cfg, "1", logger.NewMockLogger(t))
	assert.Equal(t, "CompleteRegistration", svc.resolveEventName(domain.EventTrialBooked))
	assert.Equal(t, "", svc.resolveEventName(domain.EventTrialCanceled))
}
