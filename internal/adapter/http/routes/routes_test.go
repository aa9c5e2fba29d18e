package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/handlers"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/handlers/mocks"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/contact"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/config"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

const testSecret = "routes-test-secret"

type routeMocks struct {
	budget      *mocks.MockIBudgetUseCase
	expenses    *mocks.MockIExpensesConfigUseCase
	dashboard   *mocks.MockIDashboardUseCase
	order       *mocks.MockIServiceOrderUseCase
	product     *mocks.MockIProductUseCase
	call        *mocks.MockIServiceCallUseCase
	appointment *mocks.MockIAppointmentUseCase
	payment     *mocks.MockIBillingPaymentUseCase
}

func newTestRouter(t *testing.T) (*gin.Engine, routeMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	m := routeMocks{
		budget:      mocks.NewMockIBudgetUseCase(ctrl),
		expenses:    mocks.NewMockIExpensesConfigUseCase(ctrl),
		dashboard:   mocks.NewMockIDashboardUseCase(ctrl),
		order:       mocks.NewMockIServiceOrderUseCase(ctrl),
		product:     mocks.NewMockIProductUseCase(ctrl),
		call:        mocks.NewMockIServiceCallUseCase(ctrl),
		appointment: mocks.NewMockIAppointmentUseCase(ctrl),
		payment:     mocks.NewMockIBillingPaymentUseCase(ctrl),
	}
	h := Handlers{
		Budget:       handlers.NewBudgetHandler(m.budget, nil),
		Technician:   handlers.NewTechnicianHandler(m.expenses, m.dashboard, nil),
		ServiceOrder: handlers.NewServiceOrderHandler(m.order, nil),
		Product:      handlers.NewProductHandler(m.product, nil),
		ServiceCall:  handlers.NewServiceCallHandler(m.call, contact.Coordinates{}, nil),
		Appointment:  handlers.NewAppointmentHandler(m.appointment, nil),
		Payment:      handlers.NewBillingPaymentHandler(m.payment, nil),
	}
	cfg := &config.Config{Auth: config.AuthConfig{JWTSecret: testSecret}}
	return NewRouter(cfg, h, nil), m
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "tech-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + token
}

func TestRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["message"] != "pong" {
		t.Fatalf("expected pong, got %q", body["message"])
	}
}

func TestRouter_MutatingRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/v1/budgets"},
		{http.MethodPatch, "/v1/budgets/b-1/approve"},
		{http.MethodPut, "/v1/technicians/tech-1/expenses-config"},
		{http.MethodPost, "/v1/service-orders"},
		{http.MethodPost, "/v1/products"},
		{http.MethodPost, "/v1/appointments"},
		{http.MethodPost, "/v1/payments/b-1"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`)))
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}

func TestRouter_CreateBudgetWithToken(t *testing.T) {
	r, m := newTestRouter(t)

	m.budget.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in usecase.BudgetInput) (entities.Budget, error) {
			if in.TechnicianID != "tech-1" {
				t.Fatalf("unexpected technician id %q", in.TechnicianID)
			}
			return entities.Budget{ID: "b-1", TechnicianID: in.TechnicianID, Status: entities.BudgetStatusPendente}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/budgets", strings.NewReader(`{"technician_id":"tech-1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
}

func TestRouter_PublicCalculate(t *testing.T) {
	r, m := newTestRouter(t)

	m.budget.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(entities.Budget{TechnicianID: "tech-1"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/budgets/calculate", strings.NewReader(`{"technician_id":"tech-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRouter_StaticSegmentsWinOverParams(t *testing.T) {
	r, m := newTestRouter(t)

	m.product.EXPECT().
		ExportInventory(gomock.Any(), gomock.Any()).
		Return(usecase.Document{Name: "estoque.xlsx", ContentType: usecase.ContentTypeXLSX, Body: []byte("xlsx")}, nil)
	m.product.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products/export.xlsx", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != usecase.ContentTypeXLSX {
		t.Fatalf("unexpected content type %q", got)
	}
}

func TestRouter_PaymentByID(t *testing.T) {
	r, m := newTestRouter(t)

	m.payment.EXPECT().
		GetByID(gomock.Any(), "p-1").
		Return(entities.BillingPayment{ID: "p-1", BudgetID: "b-1", Status: entities.PaymentStatusAprovado}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/b-1/p-1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/invoices", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestBuildHandlers(t *testing.T) {
	cfg := &config.Config{Payments: config.PaymentsConfig{Mock: true}}

	h := BuildHandlers(cfg, nil, nil)

	if h.Budget == nil || h.Technician == nil || h.ServiceOrder == nil || h.Product == nil ||
		h.ServiceCall == nil || h.Appointment == nil || h.Payment == nil {
		t.Fatalf("expected every handler to be wired, got %+v", h)
	}
}
