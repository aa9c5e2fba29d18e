package handlers

import (
	"net/http"
	"testing"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/handlers/mocks"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/catalog"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/contact"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var saoPaulo = contact.Coordinates{Latitude: -23.5505, Longitude: -46.6333}

func newServiceCallRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceCallUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIServiceCallUseCase(ctrl)
	h := NewServiceCallHandler(uc, saoPaulo, nil)

	r := gin.New()
	r.POST("/v1/service-calls", h.Open)
	r.GET("/v1/service-calls", h.List)
	r.GET("/v1/service-calls/:id", h.GetByID)
	return r, uc
}

func TestServiceCallHandler_Open(t *testing.T) {
	t.Run("latitude out of range", func(t *testing.T) {
		r, _ := newServiceCallRouter(t)

		w := serve(r, http.MethodPost, "/v1/service-calls", `{"customer_id":"c-1","title":"Plotter parado","latitude":123,"longitude":10}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("opened without coordinates uses fallback", func(t *testing.T) {
		r, uc := newServiceCallRouter(t)
		uc.EXPECT().
			Open(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.ServiceCallInput) (entities.ServiceCall, error) {
				if in.Latitude != nil || in.Title != "Plotter parado" {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.ServiceCall{ID: "sc-1", CustomerID: "c-1", Title: in.Title, Status: entities.ServiceCallStatusAberto}, nil
			})

		w := serve(r, http.MethodPost, "/v1/service-calls", `{"customer_id":"c-1","title":" Plotter parado "}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decode[map[string]any](t, w)
		loc, _ := body["location"].(map[string]any)
		if loc["latitude"] != saoPaulo.Latitude || loc["longitude"] != saoPaulo.Longitude {
			t.Fatalf("expected fallback location, got %v", body["location"])
		}
		if _, ok := body["maps_url"]; ok {
			t.Fatalf("expected no maps_url without coordinates or city, got %v", body["maps_url"])
		}
	})
}

func TestServiceCallHandler_List(t *testing.T) {
	r, uc := newServiceCallRouter(t)
	uc.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, c catalog.Criteria) ([]entities.ServiceCall, error) {
			if c.Status != "aberto" || c.City != "Campinas" {
				t.Fatalf("unexpected criteria %+v", c)
			}
			return []entities.ServiceCall{{ID: "sc-1", City: "Campinas"}}, nil
		})

	w := serve(r, http.MethodGet, "/v1/service-calls?status=aberto&city=Campinas", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	got := decode[[]map[string]any](t, w)
	if len(got) != 1 || got[0]["maps_url"] == nil {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestServiceCallHandler_GetByID(t *testing.T) {
	r, uc := newServiceCallRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "sc-9").Return(entities.ServiceCall{}, usecase.ErrServiceCallNotFound)

	w := serve(r, http.MethodGet, "/v1/service-calls/sc-9", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
