package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/virtuacademy/touchpoint/internal/domain"
)

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	var session domain.Session
	query := `
		SELECT id, visitor_id, first_seen_at, last_seen_at, ip_first, ua_first
		FROM sessions
		WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID,
		&session.VisitorID,
		&session.FirstSeenAt,
		&session.LastSeenAt,
		&session.IPFirst,
		&session.UAFirst,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "session", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// Upsert creates the session row on first sight. The first IP and user
// agent are write-once; only last_seen_at moves on later touches.
func (r *sessionRepository) Upsert(ctx context.Context, session *domain.Session, now time.Time) error {
	query := `
		INSERT INTO sessions (id, visitor_id, first_seen_at, last_seen_at, ip_first, ua_first)
		VALUES ($1, $2, $3, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET last_seen_at = $3
	`
	if _, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.VisitorID,
		now,
		session.IPFirst,
		session.UAFirst,
	); err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}
	return nil
}
