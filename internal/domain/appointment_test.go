package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntakeValue(t *testing.T) {
	appt := &AcuityAppointment{
		Fields: []AcuityField{
			{ID: 101, Name: "va_attrib", Value: " tok-123 "},
			{ID: 102, Name: "gclid", Value: ""},
		},
	}

	assert.Equal(t, "tok-123", appt.IntakeValue(101), "answers are trimmed")
	assert.Equal(t, "", appt.IntakeValue(102), "blank answers read as absent")
	assert.Equal(t, "", appt.IntakeValue(999), "unknown field id reads as absent")
}

func TestSnapshot(t *testing.T) {
	t.Run("full appointment", func(t *testing.T) {
		appt := &AcuityAppointment{
			ID:                42,
			AppointmentTypeID: 7,
			CalendarID:        3,
			Datetime:          "2024-06-01T10:00:00-0400",
			FirstName:         " Jane ",
			LastName:          "Doe",
			Email:             "Jane.Doe@Example.com",
			Phone:             "+1 (555) 123-4567",
		}

		snap := appt.Snapshot(`{"id":42}`)

		assert.Equal(t, "42", snap.ID)
		assert.Equal(t, AppointmentStatusScheduled, snap.Status)
		require.NotNil(t, snap.AppointmentTypeID)
		assert.Equal(t, "7", *snap.AppointmentTypeID)
		require.NotNil(t, snap.Email)
		assert.Equal(t, "jane.doe@example.com", *snap.Email)
		require.NotNil(t, snap.Phone)
		assert.Equal(t, "15551234567", *snap.Phone)
		require.NotNil(t, snap.FirstName)
		assert.Equal(t, "Jane", *snap.FirstName)
		assert.Equal(t, `{"id":42}`, snap.RawPayload)
	})

	t.Run("canceled flag drives status", func(t *testing.T) {
		appt := &AcuityAppointment{ID: 42, Canceled: true}
		assert.Equal(t, AppointmentStatusCanceled, appt.Snapshot("{}").Status)
	})

	t.Run("missing optional fields stay nil", func(t *testing.T) {
		snap := (&AcuityAppointment{ID: 42}).Snapshot("{}")
		assert.Nil(t, snap.AppointmentTypeID)
		assert.Nil(t, snap.CalendarID)
		assert.Nil(t, snap.Email)
		assert.Nil(t, snap.Phone)
		assert.Nil(t, snap.Datetime)
	})
}

func TestDeliveryStatusTerminal(t *testing.T) {
	assert.True(t, DeliveryStatusSuccess.Terminal())
	assert.True(t, DeliveryStatusSkipped.Terminal())
	assert.False(t, DeliveryStatusPending.Terminal())
	assert.False(t, DeliveryStatusFailed.Terminal())
}
