package handlers

import (
	"net/http"
	"testing"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/handlers/mocks"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/calendar"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAppointmentRouter(t *testing.T) (*gin.Engine, *mocks.MockIAppointmentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAppointmentUseCase(ctrl)
	h := NewAppointmentHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/appointments", h.Create)
	r.GET("/v1/appointments", h.ListByDay)
	r.PATCH("/v1/appointments/:id/status", h.UpdateStatus)
	return r, uc
}

func TestAppointmentHandler_Create(t *testing.T) {
	t.Run("conflict is flagged not rejected", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		uc.EXPECT().
			Create(gomock.Any(), usecase.AppointmentInput{TechnicianID: "tech-1", ClientID: "c-1", Date: "2024-06-10", Time: "09:00", DurationMinutes: 60}).
			Return(calendar.Entry{
				Appointment: entities.Appointment{ID: "a-2", TechnicianID: "tech-1", Date: "2024-06-10", Time: "09:00", Status: entities.AppointmentStatusPending},
				Conflict:    true,
			}, nil)

		w := serve(r, http.MethodPost, "/v1/appointments",
			`{"technician_id":"tech-1","client_id":"c-1","date":"2024-06-10","time":"09:00","duration_minutes":60}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if got := decode[map[string]any](t, w)["conflict"]; got != true {
			t.Fatalf("expected conflict flag, got %v", got)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(calendar.Entry{}, usecase.ErrInvalidAppointmentInput)

		w := serve(r, http.MethodPost, "/v1/appointments",
			`{"technician_id":"tech-1","client_id":"c-1","date":"10/06/2024","time":"09:00"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decode[map[string]string](t, w)["code"]; got != "INVALID_APPOINTMENT_INPUT" {
			t.Fatalf("unexpected code %q", got)
		}
	})
}

func TestAppointmentHandler_ListByDay(t *testing.T) {
	t.Run("missing date", func(t *testing.T) {
		r, _ := newAppointmentRouter(t)

		w := serve(r, http.MethodGet, "/v1/appointments?technician_id=tech-1", "")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("agenda", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		uc.EXPECT().ListByDay(gomock.Any(), "tech-1", "2024-06-10").Return([]calendar.Entry{
			{Appointment: entities.Appointment{ID: "a-1", Time: "09:00"}, Conflict: true},
			{Appointment: entities.Appointment{ID: "a-2", Time: "09:00"}, Conflict: true},
			{Appointment: entities.Appointment{ID: "a-3", Time: "14:00"}},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/appointments?technician_id=tech-1&date=2024-06-10", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		got := decode[[]map[string]any](t, w)
		if len(got) != 3 || got[0]["conflict"] != true || got[2]["conflict"] != false {
			t.Fatalf("unexpected agenda %s", w.Body.String())
		}
	})
}

func TestAppointmentHandler_UpdateStatus(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "a-1", entities.AppointmentStatusConfirmed).
			Return(entities.Appointment{ID: "a-1", Status: entities.AppointmentStatusConfirmed}, nil)

		w := serve(r, http.MethodPatch, "/v1/appointments/a-1/status", `{"status":"Confirmed"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "a-9", entities.AppointmentStatusCancelled).
			Return(entities.Appointment{}, usecase.ErrAppointmentNotFound)

		w := serve(r, http.MethodPatch, "/v1/appointments/a-9/status", `{"status":"cancelled"}`)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
