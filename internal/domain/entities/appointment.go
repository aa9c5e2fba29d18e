package entities

import (
	"time"
)

const (
	AppointmentDateLayout = "2006-01-02"
	AppointmentTimeLayout = "15:04"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// Appointment is a technician's agenda entry.
//
// Date and Time are kept as the strings the agenda works with ("2006-01-02",
// "15:04"); conflict detection compares them verbatim.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (technician_id-date-index): technician_id + date
type Appointment struct {
	ID              string            `json:"id"`
	TechnicianID    string            `json:"technician_id"`
	ClientID        string            `json:"client_id"`
	ServiceOrderID  string            `json:"service_order_id,omitempty"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	DurationMinutes int               `json:"duration_minutes"`
	Status          AppointmentStatus `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Start parses Date and Time into an instant in loc.
func (a Appointment) Start(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(AppointmentDateLayout+" "+AppointmentTimeLayout, a.Date+" "+a.Time, loc)
}

// End is Start plus the duration.
func (a Appointment) End(loc *time.Location) (time.Time, error) {
	start, err := a.Start(loc)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(a.DurationMinutes) * time.Minute), nil
}
