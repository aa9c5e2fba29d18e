package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/calendar"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrInvalidAppointmentID     = errors.New("invalid appointment id")
	ErrInvalidAppointmentInput  = errors.New("invalid appointment input")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
)

type AppointmentInput struct {
	TechnicianID    string `validate:"required"`
	ClientID        string `validate:"required"`
	ServiceOrderID  string
	Date            string `validate:"required,datetime=2006-01-02"`
	Time            string `validate:"required,datetime=15:04"`
	DurationMinutes int    `validate:"gte=0,lte=1440"`
	Notes           string
}

// IAppointmentUseCase manages a technician's agenda. Conflicts are flagged,
// never rejected.
type IAppointmentUseCase interface {
	Create(ctx context.Context, in AppointmentInput) (calendar.Entry, error)
	ListByDay(ctx context.Context, technicianID, date string) ([]calendar.Entry, error)
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error)
}

type AppointmentUseCase struct {
	repo     interfaces.IAppointmentRepository
	detector calendar.Detector
	log      *zap.Logger
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository, detector calendar.Detector, log *zap.Logger) *AppointmentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AppointmentUseCase{repo: repo, detector: detector, log: log}
}

func (u *AppointmentUseCase) Create(ctx context.Context, in AppointmentInput) (calendar.Entry, error) {
	if err := validateInput(in, ErrInvalidAppointmentInput); err != nil {
		return calendar.Entry{}, err
	}
	// stored zero-padded: "9:00" and "09:00" are the same slot
	slot, err := time.Parse(entities.AppointmentTimeLayout, in.Time)
	if err != nil {
		return calendar.Entry{}, fmt.Errorf("%w: %w", ErrInvalidAppointmentInput, err)
	}

	now := time.Now().UTC()
	a := entities.Appointment{
		ID:              uuid.NewString(),
		TechnicianID:    strings.TrimSpace(in.TechnicianID),
		ClientID:        strings.TrimSpace(in.ClientID),
		ServiceOrderID:  strings.TrimSpace(in.ServiceOrderID),
		Date:            in.Date,
		Time:            slot.Format(entities.AppointmentTimeLayout),
		DurationMinutes: in.DurationMinutes,
		Status:          entities.AppointmentStatusPending,
		Notes:           strings.TrimSpace(in.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	sameDay, err := u.repo.ListByDate(ctx, a.TechnicianID, a.Date)
	if err != nil {
		return calendar.Entry{}, err
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		u.log.Error("[appointment][usecase] repository create failed", zap.String("appointment_id", a.ID), zap.Error(err))
		return calendar.Entry{}, err
	}

	conflict := u.detector.HasConflict(created, append(sameDay, created))
	if conflict {
		u.log.Warn("[appointment][usecase] conflicting appointment",
			zap.String("appointment_id", created.ID),
			zap.String("technician_id", created.TechnicianID),
			zap.String("date", created.Date),
			zap.String("time", created.Time),
			zap.Stringer("policy", u.detector.Policy),
		)
	}
	return calendar.Entry{Appointment: created, Conflict: conflict}, nil
}

func (u *AppointmentUseCase) ListByDay(ctx context.Context, technicianID, date string) ([]calendar.Entry, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return nil, ErrInvalidTechnicianID
	}
	if _, err := time.Parse(entities.AppointmentDateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be %s", ErrInvalidAppointmentInput, entities.AppointmentDateLayout)
	}

	day, err := u.repo.ListByDate(ctx, technicianID, date)
	if err != nil {
		return nil, err
	}
	return u.detector.Agenda(day, date), nil
}

// UpdateStatus reassigns the status. Transitions are not validated.
func (u *AppointmentUseCase) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}
	if !status.Valid() {
		return entities.Appointment{}, ErrInvalidAppointmentStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return updated, nil
}
