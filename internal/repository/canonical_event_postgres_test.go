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

func TestCanonicalEventRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCanonicalEventRepository(db)
	now := time.Now().UTC()

	event := &domain.CanonicalEvent{
		ID:               "ce-1",
		Name:             domain.EventTrialBooked,
		EventTime:        now,
		AppointmentID:    strPtr("12345"),
		AttributionToken: strPtr("tok-1"),
		Currency:         domain.DefaultCurrency,
		EventID:          "12345",
		CreatedAt:        now,
	}

	mock.ExpectExec(`INSERT INTO canonical_events`).
		WithArgs(event.ID, event.Name, event.EventTime, event.AppointmentID, event.AttributionToken, nil, event.Currency, event.EventID, event.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), event)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCanonicalEventRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCanonicalEventRepository(db)
	now := time.Now().UTC().Round(time.Second)

	columns := []string{"id", "name", "event_time", "appointment_id", "attribution_token", "value", "currency", "event_id", "created_at"}

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow("ce-1", "TRIAL_BOOKED", now, "12345", "tok-1", nil, "USD", "12345", now)

		mock.ExpectQuery(`SELECT .+ FROM canonical_events WHERE id = \$1`).
			WithArgs("ce-1").
			WillReturnRows(rows)

		event, err := repo.GetByID(context.Background(), "ce-1")
		require.NoError(t, err)
		assert.Equal(t, domain.EventTrialBooked, event.Name)
		assert.Equal(t, "12345", event.EventID)
		assert.Nil(t, event.Value)
		assert.Equal(t, "USD", event.Currency)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM canonical_events WHERE id = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(columns))

		event, err := repo.GetByID(context.Background(), "missing")
		assert.Nil(t, event)
		assert.True(t, domain.IsNotFound(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
