package response

import (
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/calendar"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

type AppointmentResponse struct {
	ID              string `json:"id"`
	TechnicianID    string `json:"technician_id"`
	ClientID        string `json:"client_id"`
	ServiceOrderID  string `json:"service_order_id,omitempty"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	Notes           string `json:"notes,omitempty"`
	Conflict        bool   `json:"conflict"`
}

func FromAppointment(a entities.Appointment, conflict bool) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		TechnicianID:    a.TechnicianID,
		ClientID:        a.ClientID,
		ServiceOrderID:  a.ServiceOrderID,
		Date:            a.Date,
		Time:            a.Time,
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		Notes:           a.Notes,
		Conflict:        conflict,
	}
}

func FromEntry(e calendar.Entry) AppointmentResponse {
	return FromAppointment(e.Appointment, e.Conflict)
}

func FromAgenda(entries []calendar.Entry) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromEntry(e))
	}
	return out
}
