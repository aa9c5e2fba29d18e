package interfaces

import (
	"context"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

// IAppointmentRepository abstracts a technician's agenda.
//
// ListFromDate returns appointments on fromDate or later ("2006-01-02" strings
// sort chronologically).
type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ListByDate(ctx context.Context, technicianID, date string) ([]entities.Appointment, error)
	ListFromDate(ctx context.Context, technicianID, fromDate string) ([]entities.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error)
}
