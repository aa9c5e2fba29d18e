package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/handlers/mocks"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newServiceOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceOrderUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	h := NewServiceOrderHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/service-orders", h.Create)
	r.GET("/v1/service-orders/:id", h.GetByID)
	r.PATCH("/v1/service-orders/:id/status", h.UpdateStatus)
	r.GET("/v1/technicians/:id/service-orders", h.ListByTechnician)
	return r, uc
}

const serviceOrderBody = `{
	"technician_id": "tech-1",
	"customer": {"kind": "fisica", "nome": "Maria Souza", "cpf": "123.456.789-09", "telefone": "(11) 98765-4321"},
	"items": [{"description": "Troca de damper", "quantity": 1, "unit_price": 200, "discount": 20}],
	"discount_percent": 5
}`

func TestServiceOrderHandler_Create(t *testing.T) {
	t.Run("unknown customer kind", func(t *testing.T) {
		r, _ := newServiceOrderRouter(t)

		w := serve(r, http.MethodPost, "/v1/service-orders", `{"technician_id":"tech-1","customer":{"kind":"mei"}}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decode[map[string]string](t, w)["code"]; got != "INVALID_SERVICE_ORDER_INPUT" {
			t.Fatalf("unexpected code %q", got)
		}
	})

	t.Run("invalid cpf", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, fmt.Errorf("%w: %w", usecase.ErrInvalidServiceOrderInput, entities.ErrInvalidCPF))

		w := serve(r, http.MethodPost, "/v1/service-orders", serviceOrderBody)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decode[map[string]string](t, w)["code"]; got != "INVALID_CPF" {
			t.Fatalf("unexpected code %q", got)
		}
	})

	t.Run("budget not approved", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, usecase.ErrBudgetNotApproved)

		w := serve(r, http.MethodPost, "/v1/service-orders", serviceOrderBody)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created with contact links", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.ServiceOrderInput) (entities.ServiceOrder, error) {
				if in.Customer.Kind != entities.ClientKindFisica || in.Customer.CPF != "123.456.789-09" {
					t.Fatalf("unexpected customer %+v", in.Customer)
				}
				return entities.ServiceOrder{
					ID:           "3f2a9c1e-0000-0000-0000-000000000000",
					TechnicianID: "tech-1",
					Customer:     entities.PessoaFisica{Nome: "Maria Souza", CPF: "12345678909", Telefone: "(11) 98765-4321"},
					Total:        171,
					Status:       entities.ServiceOrderStatusAberta,
				}, nil
			})

		w := serve(r, http.MethodPost, "/v1/service-orders", serviceOrderBody)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decode[map[string]any](t, w)
		customer, _ := body["customer"].(map[string]any)
		links, _ := customer["links"].(map[string]any)
		if links["phone"] != "tel:+5511987654321" {
			t.Fatalf("unexpected links %v", customer["links"])
		}
	})
}

func TestServiceOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("status is normalized", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "so-1", entities.ServiceOrderStatusConcluida).
			Return(entities.ServiceOrder{ID: "so-1", Status: entities.ServiceOrderStatusConcluida}, nil)

		w := serve(r, http.MethodPatch, "/v1/service-orders/so-1/status", `{"status": " CONCLUIDA "}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "so-1", entities.ServiceOrderStatus("pausada")).
			Return(entities.ServiceOrder{}, usecase.ErrInvalidServiceOrderStatus)

		w := serve(r, http.MethodPatch, "/v1/service-orders/so-1/status", `{"status": "pausada"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		r, _ := newServiceOrderRouter(t)

		w := serve(r, http.MethodPatch, "/v1/service-orders/so-1/status", `{}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_GetAndList(t *testing.T) {
	r, uc := newServiceOrderRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ServiceOrder{}, usecase.ErrServiceOrderNotFound)
	uc.EXPECT().ListByTechnicianID(gomock.Any(), "tech-1").Return([]entities.ServiceOrder{{ID: "so-1"}}, nil)

	if w := serve(r, http.MethodGet, "/v1/service-orders/missing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w := serve(r, http.MethodGet, "/v1/technicians/tech-1/service-orders", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decode[[]map[string]any](t, w); len(got) != 1 {
		t.Fatalf("expected 1 order, got %d", len(got))
	}
}
