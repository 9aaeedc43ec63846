package domain

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/virtuacademy/touchpoint/pkg/normalize"
)

// AcuityField is one intake form answer on a provider appointment.
type AcuityField struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// AcuityAppointment is the data contract returned by the scheduling
// provider. Transport concerns live in the service layer; this is only the
// shape consumed by the webhook pipeline.
type AcuityAppointment struct {
	ID                int64         `json:"id"`
	AppointmentTypeID int64         `json:"appointmentTypeID,omitempty"`
	CalendarID        int64         `json:"calendarID,omitempty"`
	Datetime          string        `json:"datetime,omitempty"`
	Canceled          bool          `json:"canceled,omitempty"`
	FirstName         string        `json:"firstName,omitempty"`
	LastName          string        `json:"lastName,omitempty"`
	Email             string        `json:"email,omitempty"`
	Phone             string        `json:"phone,omitempty"`
	Fields            []AcuityField `json:"fields,omitempty"`
}

// IntakeValue returns the trimmed answer for an intake field id, or "" when
// the field is absent or blank.
func (a *AcuityAppointment) IntakeValue(fieldID int64) string {
	for _, f := range a.Fields {
		if f.ID == fieldID {
			return strings.TrimSpace(f.Value)
		}
	}
	return ""
}

// Appointment is the latest-known snapshot of a provider booking, plus the
// attribution pass-through values pulled from intake fields.
type Appointment struct {
	ID                string    `json:"id"`
	AppointmentTypeID *string   `json:"appointment_type_id,omitempty"`
	CalendarID        *string   `json:"calendar_id,omitempty"`
	Status            string    `json:"status"`
	Datetime          *string   `json:"datetime,omitempty"`
	Email             *string   `json:"email,omitempty"`
	Phone             *string   `json:"phone,omitempty"`
	FirstName         *string   `json:"first_name,omitempty"`
	LastName          *string   `json:"last_name,omitempty"`
	AttributionToken  *string   `json:"attribution_token,omitempty"`
	GCLID             *string   `json:"gclid,omitempty"`
	TTCLID            *string   `json:"ttclid,omitempty"`
	FBP               *string   `json:"fbp,omitempty"`
	FBC               *string   `json:"fbc,omitempty"`
	RawPayload        string    `json:"raw_payload"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AppointmentStatus values persisted on the snapshot.
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCanceled  = "canceled"
)

// Snapshot maps a provider appointment onto the persisted snapshot, with
// contact fields normalized at the storage boundary.
func (a *AcuityAppointment) Snapshot(rawPayload string) *Appointment {
	appt := &Appointment{
		ID:         strconv.FormatInt(a.ID, 10),
		Status:     AppointmentStatusScheduled,
		RawPayload: rawPayload,
	}
	if a.Canceled {
		appt.Status = AppointmentStatusCanceled
	}
	if a.AppointmentTypeID != 0 {
		appt.AppointmentTypeID = strPtr(strconv.FormatInt(a.AppointmentTypeID, 10))
	}
	if a.CalendarID != 0 {
		appt.CalendarID = strPtr(strconv.FormatInt(a.CalendarID, 10))
	}
	if a.Datetime != "" {
		appt.Datetime = strPtr(a.Datetime)
	}
	if email := normalize.Email(a.Email); email != "" {
		appt.Email = strPtr(email)
	}
	if phone := normalize.PhoneDigits(a.Phone); phone != "" {
		appt.Phone = strPtr(phone)
	}
	if first := strings.TrimSpace(a.FirstName); first != "" {
		appt.FirstName = strPtr(first)
	}
	if last := strings.TrimSpace(a.LastName); last != "" {
		appt.LastName = strPtr(last)
	}
	return appt
}

func strPtr(s string) *string {
	return &s
}

// AppointmentRepository upserts snapshots with per-field last-write-wins.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Upsert(ctx context.Context, appointment *Appointment) error
}

// AppointmentFetcher retrieves the authoritative snapshot from the
// scheduling provider. The fetch is idempotent and side-effect free.
type AppointmentFetcher interface {
	FetchAppointment(ctx context.Context, appointmentID string) (*AcuityAppointment, error)
}
