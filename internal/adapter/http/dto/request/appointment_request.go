package request

import (
	"strings"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"
)

type AppointmentRequest struct {
	TechnicianID    string `json:"technician_id" binding:"required"`
	ClientID        string `json:"client_id" binding:"required"`
	ServiceOrderID  string `json:"service_order_id"`
	Date            string `json:"date" binding:"required" example:"2024-06-10"`
	Time            string `json:"time" binding:"required" example:"09:00"`
	DurationMinutes int    `json:"duration_minutes" binding:"gte=0,lte=1440"`
	Notes           string `json:"notes"`
}

func (r AppointmentRequest) ToInput() usecase.AppointmentInput {
	return usecase.AppointmentInput{
		TechnicianID:    strings.TrimSpace(r.TechnicianID),
		ClientID:        strings.TrimSpace(r.ClientID),
		ServiceOrderID:  strings.TrimSpace(r.ServiceOrderID),
		Date:            strings.TrimSpace(r.Date),
		Time:            strings.TrimSpace(r.Time),
		DurationMinutes: r.DurationMinutes,
		Notes:           strings.TrimSpace(r.Notes),
	}
}

// AgendaQuery is the query string of GET /appointments.
type AgendaQuery struct {
	TechnicianID string `form:"technician_id" binding:"required"`
	Date         string `form:"date" binding:"required"`
}
