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

func newTechnicianRouter(t *testing.T) (*gin.Engine, *mocks.MockIExpensesConfigUseCase, *mocks.MockIDashboardUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	expenses := mocks.NewMockIExpensesConfigUseCase(ctrl)
	dashboard := mocks.NewMockIDashboardUseCase(ctrl)
	h := NewTechnicianHandler(expenses, dashboard, nil)

	r := gin.New()
	r.GET("/v1/technicians/:id/expenses-config", h.GetExpensesConfig)
	r.PUT("/v1/technicians/:id/expenses-config", h.SaveExpensesConfig)
	r.GET("/v1/technicians/:id/dashboard", h.Dashboard)
	return r, expenses, dashboard
}

func TestTechnicianHandler_ExpensesConfig(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		r, expenses, _ := newTechnicianRouter(t)
		expenses.EXPECT().Get(gomock.Any(), "tech-1").Return(entities.ExpensesConfig{TechnicianID: "tech-1", RatePerKm: 1.2}, nil)

		w := serve(r, http.MethodGet, "/v1/technicians/tech-1/expenses-config", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := decode[map[string]any](t, w)["rate_per_km"]; got != 1.2 {
			t.Fatalf("unexpected rate_per_km %v", got)
		}
	})

	t.Run("negative rate rejected by binding", func(t *testing.T) {
		r, _, _ := newTechnicianRouter(t)

		w := serve(r, http.MethodPut, "/v1/technicians/tech-1/expenses-config", `{"rate_per_km": -1}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("save", func(t *testing.T) {
		r, expenses, _ := newTechnicianRouter(t)
		expenses.EXPECT().
			Save(gomock.Any(), "tech-1", usecase.ExpensesConfigInput{RatePerKm: 1.5, RatePerMeal: 35}).
			Return(entities.ExpensesConfig{TechnicianID: "tech-1", RatePerKm: 1.5, RatePerMeal: 35}, nil)

		w := serve(r, http.MethodPut, "/v1/technicians/tech-1/expenses-config", `{"rate_per_km": 1.5, "rate_per_meal": 35}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("blank technician", func(t *testing.T) {
		r, expenses, _ := newTechnicianRouter(t)
		expenses.EXPECT().Get(gomock.Any(), " ").Return(entities.ExpensesConfig{}, usecase.ErrInvalidTechnicianID)

		w := serve(r, http.MethodGet, "/v1/technicians/%20/expenses-config", "")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestTechnicianHandler_Dashboard(t *testing.T) {
	r, _, dashboard := newTechnicianRouter(t)
	dashboard.EXPECT().Get(gomock.Any(), "tech-1").Return(usecase.Dashboard{
		TechnicianID:         "tech-1",
		BudgetsByStatus:      map[entities.BudgetStatus]int{entities.BudgetStatusAprovado: 2},
		ApprovedBudgetsTotal: 1500,
		UpcomingAppointments: []calendar.Entry{
			{Appointment: entities.Appointment{ID: "a-1", Date: "2024-06-10", Time: "09:00"}, Conflict: true},
		},
		ConflictingAppointments: []string{"a-1"},
	}, nil)

	w := serve(r, http.MethodGet, "/v1/technicians/tech-1/dashboard", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode[map[string]any](t, w)
	if body["approved_total_formatted"] != "R$ 1.500,00" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	byStatus, _ := body["budgets_by_status"].(map[string]any)
	if byStatus["aprovado"] != 2.0 {
		t.Fatalf("unexpected budgets_by_status %v", body["budgets_by_status"])
	}
}
