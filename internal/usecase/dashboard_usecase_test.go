package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/calendar"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	mock_interfaces "github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces/mocks"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func newDashboardForTest(t *testing.T) (*DashboardUseCase, *mock_interfaces.MockIBudgetRepository, *mock_interfaces.MockIServiceOrderRepository, *mock_interfaces.MockIAppointmentRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	uc := NewDashboardUseCase(budgets, orders, appointments, calendar.Detector{Location: time.UTC}, nil)
	uc.now = func() time.Time { return time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC) }
	return uc, budgets, orders, appointments
}

func TestDashboardUseCase_Get(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("invalid technician", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, nil, nil, calendar.Detector{}, nil)
		_, err := uc.Get(context.Background(), " ")
		if !errors.Is(err, ErrInvalidTechnicianID) {
			t.Fatalf("expected ErrInvalidTechnicianID, got %v", err)
		}
	})

	t.Run("aggregates workload", func(t *testing.T) {
		uc, budgets, orders, appointments := newDashboardForTest(t)

		budgets.EXPECT().ListByTechnicianID(gomock.Any(), "tech-1").Return([]entities.Budget{
			{ID: "b-1", Status: entities.BudgetStatusPendente, Breakdown: entities.BudgetBreakdown{Total: 100.10}},
			{ID: "b-2", Status: entities.BudgetStatusPendente, Breakdown: entities.BudgetBreakdown{Total: 200.20}},
			{ID: "b-3", Status: entities.BudgetStatusAprovado, Breakdown: entities.BudgetBreakdown{Total: 50}},
			{ID: "b-4", Status: entities.BudgetStatusRejeitado, Breakdown: entities.BudgetBreakdown{Total: 999}},
		}, nil)
		orders.EXPECT().ListByTechnicianID(gomock.Any(), "tech-1").Return([]entities.ServiceOrder{
			{ID: "so-1", Status: entities.ServiceOrderStatusAberta},
			{ID: "so-2", Status: entities.ServiceOrderStatusEmAndamento},
			{ID: "so-3", Status: entities.ServiceOrderStatusConcluida},
		}, nil)
		appointments.EXPECT().ListFromDate(gomock.Any(), "tech-1", "2024-06-10").Return([]entities.Appointment{
			{ID: "a-3", Date: "2024-06-11", Time: "08:00", Status: entities.AppointmentStatusConfirmed},
			{ID: "a-1", Date: "2024-06-10", Time: "09:00", Status: entities.AppointmentStatusPending},
			{ID: "a-2", Date: "2024-06-10", Time: "09:00", Status: entities.AppointmentStatusConfirmed},
			{ID: "a-4", Date: "2024-06-10", Time: "09:00", Status: entities.AppointmentStatusCancelled},
		}, nil)

		d, err := uc.Get(context.Background(), "tech-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantCounts := map[entities.BudgetStatus]int{
			entities.BudgetStatusPendente:  2,
			entities.BudgetStatusAprovado:  1,
			entities.BudgetStatusRejeitado: 1,
		}
		if diff := cmp.Diff(wantCounts, d.BudgetsByStatus); diff != "" {
			t.Fatalf("budget counts mismatch (-want +got):\n%s", diff)
		}
		if d.PendingBudgetsTotal != 300.3 || d.ApprovedBudgetsTotal != 50 {
			t.Fatalf("unexpected totals: pending=%v approved=%v", d.PendingBudgetsTotal, d.ApprovedBudgetsTotal)
		}
		if d.OpenServiceOrders != 2 {
			t.Fatalf("expected 2 open orders, got %d", d.OpenServiceOrders)
		}

		var ids []string
		for _, e := range d.UpcomingAppointments {
			ids = append(ids, e.Appointment.ID)
		}
		if diff := cmp.Diff([]string{"a-1", "a-2", "a-3"}, ids); diff != "" {
			t.Fatalf("agenda mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"a-1", "a-2"}, d.ConflictingAppointments); diff != "" {
			t.Fatalf("conflicts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("first failure is returned", func(t *testing.T) {
		uc, budgets, orders, appointments := newDashboardForTest(t)

		budgets.EXPECT().ListByTechnicianID(gomock.Any(), "tech-1").Return(nil, errors.New("db"))
		orders.EXPECT().ListByTechnicianID(gomock.Any(), "tech-1").Return(nil, nil).AnyTimes()
		appointments.EXPECT().ListFromDate(gomock.Any(), "tech-1", "2024-06-10").Return(nil, nil).AnyTimes()

		_, err := uc.Get(context.Background(), "tech-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("empty workload", func(t *testing.T) {
		uc, budgets, orders, appointments := newDashboardForTest(t)

		budgets.EXPECT().ListByTechnicianID(gomock.Any(), "tech-1").Return(nil, nil)
		orders.EXPECT().ListByTechnicianID(gomock.Any(), "tech-1").Return(nil, nil)
		appointments.EXPECT().ListFromDate(gomock.Any(), "tech-1", "2024-06-10").Return(nil, nil)

		d, err := uc.Get(context.Background(), "tech-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.UpcomingAppointments == nil || d.ConflictingAppointments == nil {
			t.Fatalf("expected empty, non-nil slices: %+v", d)
		}
	})
}
