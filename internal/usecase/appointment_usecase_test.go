package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/calendar"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	mock_interfaces "github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func appointmentInput(at string) AppointmentInput {
	return AppointmentInput{TechnicianID: "tech-1", ClientID: "c-1", Date: "2024-06-10", Time: at, DurationMinutes: 60}
}

func echoAppointment(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
	return a, nil
}

func TestAppointmentUseCase_Create(t *testing.T) {
	t.Run("invalid time", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil, calendar.Detector{}, nil)
		_, err := uc.Create(context.Background(), appointmentInput("9h"))
		if !errors.Is(err, ErrInvalidAppointmentInput) {
			t.Fatalf("expected ErrInvalidAppointmentInput, got %v", err)
		}
	})

	t.Run("same time is flagged but stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo, calendar.Detector{}, nil)

		existing := entities.Appointment{ID: "a-1", TechnicianID: "tech-1", Date: "2024-06-10", Time: "09:00"}
		repo.EXPECT().ListByDate(gomock.Any(), "tech-1", "2024-06-10").Return([]entities.Appointment{existing}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoAppointment)

		e, err := uc.Create(context.Background(), appointmentInput("09:00"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !e.Conflict || e.Appointment.Status != entities.AppointmentStatusPending {
			t.Fatalf("unexpected entry: %+v", e)
		}
	})

	t.Run("unpadded hour is stored padded and conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo, calendar.Detector{}, nil)

		existing := entities.Appointment{ID: "a-1", TechnicianID: "tech-1", Date: "2024-06-10", Time: "09:00"}
		repo.EXPECT().ListByDate(gomock.Any(), "tech-1", "2024-06-10").Return([]entities.Appointment{existing}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoAppointment)

		e, err := uc.Create(context.Background(), appointmentInput("9:00"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Appointment.Time != "09:00" {
			t.Fatalf("expected time 09:00, got %q", e.Appointment.Time)
		}
		if !e.Conflict {
			t.Fatalf("expected conflict with 09:00")
		}
	})

	t.Run("overlap ignored under exact time policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo, calendar.Detector{Policy: calendar.ExactTime}, nil)

		existing := entities.Appointment{ID: "a-1", Date: "2024-06-10", Time: "09:00", DurationMinutes: 120}
		repo.EXPECT().ListByDate(gomock.Any(), "tech-1", "2024-06-10").Return([]entities.Appointment{existing}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoAppointment)

		e, err := uc.Create(context.Background(), appointmentInput("10:00"))
		if err != nil || e.Conflict {
			t.Fatalf("expected no conflict, got %+v err=%v", e, err)
		}
	})

	t.Run("overlap flagged under interval policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo, calendar.Detector{Policy: calendar.IntervalOverlap}, nil)

		existing := entities.Appointment{ID: "a-1", Date: "2024-06-10", Time: "09:00", DurationMinutes: 120}
		repo.EXPECT().ListByDate(gomock.Any(), "tech-1", "2024-06-10").Return([]entities.Appointment{existing}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoAppointment)

		e, err := uc.Create(context.Background(), appointmentInput("10:00"))
		if err != nil || !e.Conflict {
			t.Fatalf("expected conflict, got %+v err=%v", e, err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo, calendar.Detector{}, nil)
		repo.EXPECT().ListByDate(gomock.Any(), "tech-1", "2024-06-10").Return(nil, errors.New("db"))

		_, err := uc.Create(context.Background(), appointmentInput("09:00"))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestAppointmentUseCase_ListByDay(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil, calendar.Detector{}, nil)
		_, err := uc.ListByDay(context.Background(), "tech-1", "10/06/2024")
		if !errors.Is(err, ErrInvalidAppointmentInput) {
			t.Fatalf("expected ErrInvalidAppointmentInput, got %v", err)
		}
	})

	t.Run("sorted with conflict flags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo, calendar.Detector{}, nil)
		repo.EXPECT().ListByDate(gomock.Any(), "tech-1", "2024-06-10").Return([]entities.Appointment{
			{ID: "a-3", Date: "2024-06-10", Time: "14:00"},
			{ID: "a-1", Date: "2024-06-10", Time: "09:00"},
			{ID: "a-2", Date: "2024-06-10", Time: "09:00"},
		}, nil)

		got, err := uc.ListByDay(context.Background(), "tech-1", "2024-06-10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 || got[0].Appointment.ID != "a-1" || got[2].Appointment.ID != "a-3" {
			t.Fatalf("unexpected order: %+v", got)
		}
		if !got[0].Conflict || !got[1].Conflict || got[2].Conflict {
			t.Fatalf("unexpected flags: %+v", got)
		}
	})
}

func TestAppointmentUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil, calendar.Detector{}, nil)
		_, err := uc.UpdateStatus(context.Background(), "a-1", "done")
		if !errors.Is(err, ErrInvalidAppointmentStatus) {
			t.Fatalf("expected ErrInvalidAppointmentStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo, calendar.Detector{}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "a-1", entities.AppointmentStatusConfirmed).Return(entities.Appointment{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "a-1", entities.AppointmentStatusConfirmed)
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})
}
