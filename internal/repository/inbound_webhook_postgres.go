package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/virtuacademy/touchpoint/internal/domain"
)

type inboundWebhookRepository struct {
	db *sql.DB
}

// NewInboundWebhookRepository creates a new PostgreSQL inbound webhook repository
func NewInboundWebhookRepository(db *sql.DB) domain.InboundWebhookRepository {
	return &inboundWebhookRepository{db: db}
}

// Insert writes the audit row. A unique violation on (source, body_hash)
// means this exact payload was already received; that is reported as
// inserted=false, not an error.
func (r *inboundWebhookRepository) Insert(ctx context.Context, webhook *domain.InboundWebhook) (bool, error) {
	query := `
		INSERT INTO inbound_webhooks (id, source, action, external_id, body_raw, body_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		webhook.ID,
		webhook.Source,
		webhook.Action,
		webhook.ExternalID,
		webhook.BodyRaw,
		webhook.BodyHash,
		webhook.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert inbound webhook: %w", err)
	}
	return true, nil
}

func (r *inboundWebhookRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM inbound_webhooks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete inbound webhook: %w", err)
	}
	return nil
}
