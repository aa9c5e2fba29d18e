package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/handlers/mocks"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIBillingPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
	h := NewBillingPaymentHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/payments/:budget_id", h.CreateByBudgetID)
	r.GET("/v1/payments/:budget_id", h.GetLatestByBudgetID)
	r.GET("/v1/payments/:budget_id/:payment_id", h.GetByID)
	r.GET("/v1/budgets/:id/payments", h.ListByBudgetID)
	return r, uc
}

func TestBillingPaymentHandler_CreateByBudgetID(t *testing.T) {
	t.Run("body read error", func(t *testing.T) {
		r, _ := newPaymentRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/b-1", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparsable payload is left to the usecase", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "b-1", gomock.Nil()).Return(entities.BillingPayment{}, usecase.ErrInvalidMPPayload)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/b-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("budget not approved", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "b-1", gomock.Any()).Return(entities.BillingPayment{}, usecase.ErrBudgetNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/b-1", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success unwraps mp_payload", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		now := time.Now().UTC()
		uc.EXPECT().
			CreateAndApprove(gomock.Any(), "b-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, payload json.RawMessage) (entities.BillingPayment, error) {
				if string(payload) != `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}` {
					t.Fatalf("unexpected payload %s", payload)
				}
				return entities.BillingPayment{ID: "pay-1", BudgetID: "b-1", Amount: 350, Date: now, Status: entities.PaymentStatusAprovado}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/b-1", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["budget_id"] != "b-1" || body["amount"] != 350.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBillingPaymentHandler_GetLatestByBudgetID(t *testing.T) {
	t.Run("invalid budget id", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetLatestByBudgetID(gomock.Any(), "b-1").Return(entities.BillingPayment{}, usecase.ErrInvalidPaymentBudgetID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/b-1", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetLatestByBudgetID(gomock.Any(), "b-1").Return(entities.BillingPayment{}, usecase.ErrBillingPaymentNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/b-1", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		latest := entities.BillingPayment{ID: "latest", BudgetID: "b-1", Date: time.Now(), Status: entities.PaymentStatusAprovado}
		uc.EXPECT().GetLatestByBudgetID(gomock.Any(), "b-1").Return(latest, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/b-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "latest" {
			t.Fatalf("expected latest payment, got body: %s", w.Body.String())
		}
	})
}

func TestBillingPaymentHandler_GetByID(t *testing.T) {
	t.Run("payment of another budget", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.BillingPayment{ID: "p-1", BudgetID: "b-2"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/b-1/p-1", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.BillingPayment{ID: "p-1", BudgetID: "b-1"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/b-1/p-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBillingPaymentHandler_ListByBudgetID(t *testing.T) {
	r, uc := newPaymentRouter(t)
	uc.EXPECT().ListByBudgetID(gomock.Any(), "b-1").Return([]entities.BillingPayment{
		{ID: "p-1", BudgetID: "b-1", Status: entities.PaymentStatusNegado},
		{ID: "p-2", BudgetID: "b-1", Status: entities.PaymentStatusAprovado},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/budgets/b-1/payments", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body) != 2 || body[1]["status"] != "aprovado" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMapBillingPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentBudgetID, http.StatusBadRequest},
		{usecase.ErrInvalidMPPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{usecase.ErrBudgetNotFound, http.StatusNotFound},
		{usecase.ErrBudgetNotApproved, http.StatusConflict},
		{usecase.ErrBillingPaymentNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapBillingPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
