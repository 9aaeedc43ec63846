package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/virtuacademy/touchpoint/internal/domain"
)

type deliveryRepository struct {
	db *sql.DB
}

// NewDeliveryRepository creates a new PostgreSQL delivery repository
func NewDeliveryRepository(db *sql.DB) domain.DeliveryRepository {
	return &deliveryRepository{db: db}
}

// CreateForEvent inserts one PENDING row per platform. ON CONFLICT DO NOTHING
// on (canonical_event_id, platform) makes re-invocation after a partial
// failure safe.
func (r *deliveryRepository) CreateForEvent(ctx context.Context, canonicalEventID string, platforms []domain.Platform) error {
	now := time.Now().UTC()
	builder := sq.Insert("deliveries").
		Columns("id", "canonical_event_id", "platform", "status", "attempts", "created_at").
		Suffix("ON CONFLICT (canonical_event_id, platform) DO NOTHING").
		PlaceholderFormat(sq.Dollar)
	for _, platform := range platforms {
		builder = builder.Values(uuid.New().String(), canonicalEventID, platform, domain.DeliveryStatusPending, 0, now)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delivery insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create deliveries: %w", err)
	}
	return nil
}

func (r *deliveryRepository) ListByEvent(ctx context.Context, canonicalEventID string) ([]*domain.Delivery, error) {
	query, args, err := sq.Select(
		"id", "canonical_event_id", "platform", "status", "attempts",
		"last_attempt_at", "response_code", "response_body", "request_body", "created_at",
	).
		From("deliveries").
		Where(sq.Eq{"canonical_event_id": canonicalEventID}).
		OrderBy("created_at ASC", "platform ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build delivery query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []*domain.Delivery
	for rows.Next() {
		var d domain.Delivery
		if err := rows.Scan(
			&d.ID,
			&d.CanonicalEventID,
			&d.Platform,
			&d.Status,
			&d.Attempts,
			&d.LastAttemptAt,
			&d.ResponseCode,
			&d.ResponseBody,
			&d.RequestBody,
			&d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		deliveries = append(deliveries, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deliveries: %w", err)
	}
	return deliveries, nil
}

func (r *deliveryRepository) RecordAttempt(ctx context.Context, deliveryID string, now time.Time, attempt domain.DeliveryAttempt) error {
	query, args, err := sq.Update("deliveries").
		Set("status", attempt.Status).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_attempt_at", now).
		Set("response_code", attempt.ResponseCode).
		Set("response_body", attempt.ResponseBody).
		Set("request_body", attempt.RequestBody).
		Where(sq.Eq{"id": deliveryID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build attempt update: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record delivery attempt: %w", err)
	}
	return nil
}
