package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtuacademy/touchpoint/internal/domain"
)

func TestAppointmentRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAppointmentRepository(db)
	now := time.Now().UTC().Round(time.Second)

	columns := []string{
		"id", "appointment_type_id", "calendar_id", "status", "datetime",
		"email", "phone", "first_name", "last_name",
		"attribution_token", "gclid", "ttclid", "fbp", "fbc",
		"raw_payload", "created_at", "updated_at",
	}

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).AddRow(
			"12345", "777", "9", domain.AppointmentStatusScheduled, "2026-09-15T10:00:00-0500",
			"jane@gmail.com", "15551234567", "Jane", "Doe",
			"tok-1", "abc", nil, "fb.1.1.2", nil,
			`{"id":12345}`, now, now,
		)

		mock.ExpectQuery(`SELECT .+ FROM appointments WHERE id = \$1`).
			WithArgs("12345").
			WillReturnRows(rows)

		appointment, err := repo.GetByID(context.Background(), "12345")
		require.NoError(t, err)
		assert.Equal(t, "12345", appointment.ID)
		assert.Equal(t, domain.AppointmentStatusScheduled, appointment.Status)
		require.NotNil(t, appointment.AttributionToken)
		assert.Equal(t, "tok-1", *appointment.AttributionToken)
		require.NotNil(t, appointment.GCLID)
		assert.Equal(t, "abc", *appointment.GCLID)
		assert.Nil(t, appointment.TTCLID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM appointments WHERE id = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(columns))

		appointment, err := repo.GetByID(context.Background(), "missing")
		assert.Nil(t, appointment)
		assert.True(t, domain.IsNotFound(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_Upsert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAppointmentRepository(db)

	appointment := &domain.Appointment{
		ID:               "12345",
		Status:           domain.AppointmentStatusScheduled,
		Email:            strPtr("jane@gmail.com"),
		AttributionToken: strPtr("tok-1"),
		RawPayload:       `{"id":12345}`,
	}

	mock.ExpectExec(`INSERT INTO appointments .+ ON CONFLICT \(id\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), appointment)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
