package service

import (
	"context"
	"fmt"
	"time"

	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/pkg/crypto"
	"github.com/virtuacademy/touchpoint/pkg/logger"
)

// IdentityService resolves the (visitor, session, attribution) triple for a
// beacon and folds touches into the attribution record.
type IdentityService struct {
	visitorRepo     domain.VisitorRepository
	sessionRepo     domain.SessionRepository
	attributionRepo domain.AttributionRepository
	logger          logger.Logger
}

func NewIdentityService(
	visitorRepo domain.VisitorRepository,
	sessionRepo domain.SessionRepository,
	attributionRepo domain.AttributionRepository,
	logger logger.Logger,
) *IdentityService {
	return &IdentityService{
		visitorRepo:     visitorRepo,
		sessionRepo:     sessionRepo,
		attributionRepo: attributionRepo,
		logger:          logger,
	}
}

var _ domain.IdentityServiceInterface = (*IdentityService)(nil)

// ResolveOrCreate accepts whatever identifiers the browser presented and
// returns the triple to set back as cookies. Unknown or absent identifiers
// get fresh ids; a session whose last activity is older than the inactivity
// window is replaced rather than revived.
func (s *IdentityService) ResolveOrCreate(ctx context.Context, existingVisitorID, existingSessionID, existingToken string, now time.Time, ip, userAgent string) (*domain.ResolvedIdentity, error) {
	visitorID := existingVisitorID
	if visitorID == "" {
		visitorID = crypto.RandomID()
	}
	if err := s.visitorRepo.Upsert(ctx, visitorID, now); err != nil {
		return nil, fmt.Errorf("failed to upsert visitor: %w", err)
	}

	sessionID := existingSessionID
	if sessionID != "" {
		existing, err := s.sessionRepo.GetByID(ctx, sessionID)
		switch {
		case domain.IsNotFound(err):
			// An id with no stored session is never trusted.
			sessionID = crypto.RandomID()
		case err != nil:
			return nil, fmt.Errorf("failed to load session: %w", err)
		case existing.Expired(now):
			sessionID = crypto.RandomID()
		}
	}
	if sessionID == "" {
		sessionID = crypto.RandomID()
	}

	session := &domain.Session{
		ID:        sessionID,
		VisitorID: visitorID,
	}
	if ip != "" {
		session.IPFirst = &ip
	}
	if userAgent != "" {
		session.UAFirst = &userAgent
	}
	if err := s.sessionRepo.Upsert(ctx, session, now); err != nil {
		return nil, fmt.Errorf("failed to upsert session: %w", err)
	}

	token := existingToken
	if token == "" {
		token = crypto.RandomID()
	}

	return &domain.ResolvedIdentity{
		VisitorID:        visitorID,
		SessionID:        sessionID,
		AttributionToken: token,
	}, nil
}

// MergeAttribution folds one touch into the token's record, creating the
// first-touch row when the token is unseen.
func (s *IdentityService) MergeAttribution(ctx context.Context, token string, now time.Time, touch domain.AttributionTouch, visitorID, sessionID string) error {
	attribution, err := s.attributionRepo.GetByToken(ctx, token)
	if err != nil {
		if !domain.IsNotFound(err) {
			return fmt.Errorf("failed to load attribution: %w", err)
		}
		attribution = domain.NewAttribution(token, now, touch, visitorID, sessionID)
	} else {
		attribution.Merge(now, touch, visitorID, sessionID)
	}

	if err := s.attributionRepo.Save(ctx, attribution); err != nil {
		return fmt.Errorf("failed to save attribution: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"token":      token,
		"visitor_id": visitorID,
		"session_id": sessionID,
	}).Debug("Attribution touch merged")

	return nil
}
