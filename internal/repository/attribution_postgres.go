package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/virtuacademy/touchpoint/internal/domain"
)

type attributionRepository struct {
	db *sql.DB
}

// NewAttributionRepository creates a new PostgreSQL attribution repository
func NewAttributionRepository(db *sql.DB) domain.AttributionRepository {
	return &attributionRepository{db: db}
}

const attributionColumns = `
	token, first_touch_at, last_touch_at, first_url, last_url,
	first_referrer, last_referrer, ip, user_agent,
	utm_source, utm_medium, utm_campaign, utm_term, utm_content,
	gclid, gbraid, wbraid, dclid,
	fbclid, fbp, fbc, ttclid, msclkid, hubspotutk,
	visitor_id, session_id, created_at, updated_at`

func scanAttribution(scanner interface {
	Scan(dest ...interface{}) error
}) (*domain.Attribution, error) {
	var a domain.Attribution
	err := scanner.Scan(
		&a.Token,
		&a.FirstTouchAt,
		&a.LastTouchAt,
		&a.FirstURL,
		&a.LastURL,
		&a.FirstReferrer,
		&a.LastReferrer,
		&a.IP,
		&a.UserAgent,
		&a.UTMSource,
		&a.UTMMedium,
		&a.UTMCampaign,
		&a.UTMTerm,
		&a.UTMContent,
		&a.GCLID,
		&a.GBRAID,
		&a.WBRAID,
		&a.DCLID,
		&a.FBCLID,
		&a.FBP,
		&a.FBC,
		&a.TTCLID,
		&a.MSCLKID,
		&a.HubspotUTK,
		&a.VisitorID,
		&a.SessionID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *attributionRepository) GetByToken(ctx context.Context, token string) (*domain.Attribution, error) {
	query := `SELECT ` + attributionColumns + ` FROM attributions WHERE token = $1`
	attribution, err := scanAttribution(r.db.QueryRowContext(ctx, query, token))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "attribution", ID: token}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attribution: %w", err)
	}
	return attribution, nil
}

// Save persists the merged row. The merge itself (write-once first-touch,
// non-destructive params) happens in the domain before this write, so the
// upsert plainly overwrites the mutable columns.
func (r *attributionRepository) Save(ctx context.Context, a *domain.Attribution) error {
	query := `
		INSERT INTO attributions (` + attributionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		ON CONFLICT (token) DO UPDATE SET
			last_touch_at = EXCLUDED.last_touch_at,
			last_url = EXCLUDED.last_url,
			last_referrer = EXCLUDED.last_referrer,
			ip = EXCLUDED.ip,
			user_agent = EXCLUDED.user_agent,
			utm_source = EXCLUDED.utm_source,
			utm_medium = EXCLUDED.utm_medium,
			utm_campaign = EXCLUDED.utm_campaign,
			utm_term = EXCLUDED.utm_term,
			utm_content = EXCLUDED.utm_content,
			gclid = EXCLUDED.gclid,
			gbraid = EXCLUDED.gbraid,
			wbraid = EXCLUDED.wbraid,
			dclid = EXCLUDED.dclid,
			fbclid = EXCLUDED.fbclid,
			fbp = EXCLUDED.fbp,
			fbc = EXCLUDED.fbc,
			ttclid = EXCLUDED.ttclid,
			msclkid = EXCLUDED.msclkid,
			hubspotutk = EXCLUDED.hubspotutk,
			visitor_id = EXCLUDED.visitor_id,
			session_id = EXCLUDED.session_id,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query,
		a.Token,
		a.FirstTouchAt,
		a.LastTouchAt,
		a.FirstURL,
		a.LastURL,
		a.FirstReferrer,
		a.LastReferrer,
		a.IP,
		a.UserAgent,
		a.UTMSource,
		a.UTMMedium,
		a.UTMCampaign,
		a.UTMTerm,
		a.UTMContent,
		a.GCLID,
		a.GBRAID,
		a.WBRAID,
		a.DCLID,
		a.FBCLID,
		a.FBP,
		a.FBC,
		a.TTCLID,
		a.MSCLKID,
		a.HubspotUTK,
		a.VisitorID,
		a.SessionID,
		a.CreatedAt,
		a.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to save attribution: %w", err)
	}
	return nil
}
