package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/virtuacademy/touchpoint/internal/domain"
)

type appointmentRepository struct {
	db *sql.DB
}

// NewAppointmentRepository creates a new PostgreSQL appointment repository
func NewAppointmentRepository(db *sql.DB) domain.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `
		SELECT id, appointment_type_id, calendar_id, status, datetime,
			email, phone, first_name, last_name,
			attribution_token, gclid, ttclid, fbp, fbc,
			raw_payload, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var a domain.Appointment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.AppointmentTypeID,
		&a.CalendarID,
		&a.Status,
		&a.Datetime,
		&a.Email,
		&a.Phone,
		&a.FirstName,
		&a.LastName,
		&a.AttributionToken,
		&a.GCLID,
		&a.TTCLID,
		&a.FBP,
		&a.FBC,
		&a.RawPayload,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "appointment", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &a, nil
}

// Upsert writes the latest snapshot. Provider-sourced columns overwrite
// unconditionally; the attribution pass-through columns use COALESCE so a
// later payload that omits them never erases a value captured at booking.
func (r *appointmentRepository) Upsert(ctx context.Context, appointment *domain.Appointment) error {
	now := time.Now().UTC()
	query := `
		INSERT INTO appointments (
			id, appointment_type_id, calendar_id, status, datetime,
			email, phone, first_name, last_name,
			attribution_token, gclid, ttclid, fbp, fbc,
			raw_payload, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
		ON CONFLICT (id) DO UPDATE SET
			appointment_type_id = EXCLUDED.appointment_type_id,
			calendar_id = EXCLUDED.calendar_id,
			status = EXCLUDED.status,
			datetime = EXCLUDED.datetime,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			attribution_token = COALESCE(EXCLUDED.attribution_token, appointments.attribution_token),
			gclid = COALESCE(EXCLUDED.gclid, appointments.gclid),
			ttclid = COALESCE(EXCLUDED.ttclid, appointments.ttclid),
			fbp = COALESCE(EXCLUDED.fbp, appointments.fbp),
			fbc = COALESCE(EXCLUDED.fbc, appointments.fbc),
			raw_payload = EXCLUDED.raw_payload,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.AppointmentTypeID,
		appointment.CalendarID,
		appointment.Status,
		appointment.Datetime,
		appointment.Email,
		appointment.Phone,
		appointment.FirstName,
		appointment.LastName,
		appointment.AttributionToken,
		appointment.GCLID,
		appointment.TTCLID,
		appointment.FBP,
		appointment.FBC,
		appointment.RawPayload,
		now,
	); err != nil {
		return fmt.Errorf("failed to upsert appointment: %w", err)
	}
	return nil
}
