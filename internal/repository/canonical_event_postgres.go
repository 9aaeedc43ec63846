package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/virtuacademy/touchpoint/internal/domain"
)

type canonicalEventRepository struct {
	db *sql.DB
}

// NewCanonicalEventRepository creates a new PostgreSQL canonical event repository
func NewCanonicalEventRepository(db *sql.DB) domain.CanonicalEventRepository {
	return &canonicalEventRepository{db: db}
}

func (r *canonicalEventRepository) Create(ctx context.Context, event *domain.CanonicalEvent) error {
	query := `
		INSERT INTO canonical_events (id, name, event_time, appointment_id, attribution_token, value, currency, event_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Name,
		event.EventTime,
		event.AppointmentID,
		event.AttributionToken,
		event.Value,
		event.Currency,
		event.EventID,
		event.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to create canonical event: %w", err)
	}
	return nil
}

func (r *canonicalEventRepository) GetByID(ctx context.Context, id string) (*domain.CanonicalEvent, error) {
	query := `
		SELECT id, name, event_time, appointment_id, attribution_token, value, currency, event_id, created_at
		FROM canonical_events
		WHERE id = $1
	`
	var e domain.CanonicalEvent
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.Name,
		&e.EventTime,
		&e.AppointmentID,
		&e.AttributionToken,
		&e.Value,
		&e.Currency,
		&e.EventID,
		&e.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "canonical_event", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get canonical event: %w", err)
	}
	return &e, nil
}
