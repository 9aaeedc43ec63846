package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/internal/domain/mocks"
	"github.com/virtuacademy/touchpoint/pkg/logger"
)

func TestIdentityService_ResolveOrCreate_NewBrowser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	visitorRepo := mocks.NewMockVisitorRepository(ctrl)
	sessionRepo := mocks.NewMockSessionRepository(ctrl)
	attributionRepo := mocks.NewMockAttributionRepository(ctrl)
	svc := NewIdentityService(visitorRepo, sessionRepo, attributionRepo, logger.NewMockLogger(t))

	now := time.Now().UTC()
	visitorRepo.EXPECT().Upsert(gomock.Any(), gomock.Any(), now).Return(nil)
	sessionRepo.EXPECT().Upsert(gomock.Any(), gomock.Any(), now).Return(nil)

	identity, err := svc.ResolveOrCreate(context.Background(), "", "", "", now, "203.0.113.9", "Mozilla/5.0")
	require.NoError(t, err)
	assert.NotEmpty(t, identity.VisitorID)
	assert.NotEmpty(t, identity.SessionID)
	assert.NotEmpty(t, identity.AttributionToken)
}

func TestIdentityService_ResolveOrCreate_ReturningVisitor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	visitorRepo := mocks.NewMockVisitorRepository(ctrl)
	sessionRepo := mocks.NewMockSessionRepository(ctrl)
	attributionRepo := mocks.NewMockAttributionRepository(ctrl)
	svc := NewIdentityService(visitorRepo, sessionRepo, attributionRepo, logger.NewMockLogger(t))

	now := time.Now().UTC()

	t.Run("active session is reused", func(t *testing.T) {
		visitorRepo.EXPECT().Upsert(gomock.Any(), "vid-1", now).Return(nil)
		sessionRepo.EXPECT().GetByID(gomock.Any(), "sid-1").Return(&domain.Session{
			ID:         "sid-1",
			VisitorID:  "vid-1",
			LastSeenAt: now.Add(-10 * time.Minute),
		}, nil)
		sessionRepo.EXPECT().Upsert(gomock.Any(), gomock.Any(), now).Return(nil)

		identity, err := svc.ResolveOrCreate(context.Background(), "vid-1", "sid-1", "tok-1", now, "", "")
		require.NoError(t, err)
		assert.Equal(t, "vid-1", identity.VisitorID)
		assert.Equal(t, "sid-1", identity.SessionID)
		assert.Equal(t, "tok-1", identity.AttributionToken)
	})

	t.Run("expired session gets a fresh id", func(t *testing.T) {
		visitorRepo.EXPECT().Upsert(gomock.Any(), "vid-1", now).Return(nil)
		sessionRepo.EXPECT().GetByID(gomock.Any(), "sid-1").Return(&domain.Session{
			ID:         "sid-1",
			VisitorID:  "vid-1",
			LastSeenAt: now.Add(-31 * time.Minute),
		}, nil)
		sessionRepo.EXPECT().Upsert(gomock.Any(), gomock.Any(), now).Return(nil)

		identity, err := svc.ResolveOrCreate(context.Background(), "vid-1", "sid-1", "tok-1", now, "", "")
		require.NoError(t, err)
		assert.NotEqual(t, "sid-1", identity.SessionID)
		assert.Equal(t, "tok-1", identity.AttributionToken)
	})

	t.Run("unknown session id gets a fresh id", func(t *testing.T) {
		visitorRepo.EXPECT().Upsert(gomock.Any(), "vid-1", now).Return(nil)
		sessionRepo.EXPECT().GetByID(gomock.Any(), "sid-gone").
			Return(nil, &domain.ErrNotFound{Entity: "session", ID: "sid-gone"})

		var upserted *domain.Session
		sessionRepo.EXPECT().Upsert(gomock.Any(), gomock.Any(), now).
			DoAndReturn(func(_ context.Context, session *domain.Session, _ time.Time) error {
				upserted = session
				return nil
			})

		identity, err := svc.ResolveOrCreate(context.Background(), "vid-1", "sid-gone", "tok-1", now, "", "")
		require.NoError(t, err)
		assert.NotEqual(t, "sid-gone", identity.SessionID)
		assert.NotEmpty(t, identity.SessionID)
		require.NotNil(t, upserted)
		assert.Equal(t, identity.SessionID, upserted.ID)
	})
}

func TestIdentityService_ResolveOrCreate_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	visitorRepo := mocks.NewMockVisitorRepository(ctrl)
	sessionRepo := mocks.NewMockSessionRepository(ctrl)
	attributionRepo := mocks.NewMockAttributionRepository(ctrl)
	svc := NewIdentityService(visitorRepo, sessionRepo, attributionRepo, logger.NewMockLogger(t))

	visitorRepo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("db down"))

	identity, err := svc.ResolveOrCreate(context.Background(), "", "", "", time.Now(), "", "")
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestIdentityService_MergeAttribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	visitorRepo := mocks.NewMockVisitorRepository(ctrl)
	sessionRepo := mocks.NewMockSessionRepository(ctrl)
	attributionRepo := mocks.NewMockAttributionRepository(ctrl)
	svc := NewIdentityService(visitorRepo, sessionRepo, attributionRepo, logger.NewMockLogger(t))

	now := time.Now().UTC()

	t.Run("unseen token creates the first-touch record", func(t *testing.T) {
		attributionRepo.EXPECT().GetByToken(gomock.Any(), "tok-1").
			Return(nil, &domain.ErrNotFound{Entity: "attribution", ID: "tok-1"})

		var saved *domain.Attribution
		attributionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *domain.Attribution) error {
				saved = a
				return nil
			})

		touch := domain.AttributionTouch{
			URL:       "https://virtu.academy/?gclid=abc",
			UTMSource: "google",
			GCLID:     "abc",
		}
		err := svc.MergeAttribution(context.Background(), "tok-1", now, touch, "vid-1", "sid-1")
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, now, saved.FirstTouchAt)
		assert.Equal(t, "https://virtu.academy/?gclid=abc", saved.FirstURL)
		require.NotNil(t, saved.GCLID)
		assert.Equal(t, "abc", *saved.GCLID)
	})

	t.Run("known token merges without touching first-touch fields", func(t *testing.T) {
		firstTouch := now.Add(-48 * time.Hour)
		existing := domain.NewAttribution("tok-1", firstTouch, domain.AttributionTouch{
			URL:       "https://virtu.academy/?utm_source=google",
			UTMSource: "google",
		}, "vid-1", "sid-old")

		attributionRepo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(existing, nil)

		var saved *domain.Attribution
		attributionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *domain.Attribution) error {
				saved = a
				return nil
			})

		touch := domain.AttributionTouch{
			URL:    "https://virtu.academy/trial",
			TTCLID: "tt-1",
		}
		err := svc.MergeAttribution(context.Background(), "tok-1", now, touch, "vid-1", "sid-new")
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, firstTouch, saved.FirstTouchAt)
		assert.Equal(t, "https://virtu.academy/?utm_source=google", saved.FirstURL)
		assert.Equal(t, "https://virtu.academy/trial", saved.LastURL)
		require.NotNil(t, saved.UTMSource)
		assert.Equal(t, "google", *saved.UTMSource)
		require.NotNil(t, saved.TTCLID)
		assert.Equal(t, "tt-1", *saved.TTCLID)
		assert.Equal(t, "sid-new", saved.SessionID)
	})
}
