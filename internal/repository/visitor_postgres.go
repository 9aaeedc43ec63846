package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/virtuacademy/touchpoint/internal/domain"
)

type visitorRepository struct {
	db *sql.DB
}

// NewVisitorRepository creates a new PostgreSQL visitor repository
func NewVisitorRepository(db *sql.DB) domain.VisitorRepository {
	return &visitorRepository{db: db}
}

// Upsert creates the visitor on first sight and touches last_seen_at on
// every subsequent call.
func (r *visitorRepository) Upsert(ctx context.Context, id string, now time.Time) error {
	query := `
		INSERT INTO visitors (id, first_seen_at, last_seen_at)
		VALUES ($1, $2, $2)
		ON CONFLICT (id) DO UPDATE SET last_seen_at = $2
	`
	if _, err := r.db.ExecContext(ctx, query, id, now); err != nil {
		return fmt.Errorf("failed to upsert visitor: %w", err)
	}
	return nil
}
