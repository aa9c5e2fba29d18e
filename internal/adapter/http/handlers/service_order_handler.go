package handlers

import (
	"errors"
	"net/http"

	request "github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/dto/request"
	response "github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/dto/response"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"
	"github.com/Michaeldoss/apptecnico1-sub001/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidServiceOrderPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)

// ServiceOrderHandler handles HTTP requests for service orders (ordens de serviço).
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
	log     *zap.Logger
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase, log *zap.Logger) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc, log: loggerOrNop(log)}
}

// Create godoc
// @Summary      Open a service order
// @Description  With budget_id the budget must be approved; its parts become the items when none are sent.
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.ServiceOrderRequest  true  "Service order"
// @Success      201    {object}  response.ServiceOrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /service-orders [post]
func (h *ServiceOrderHandler) Create(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.log, errInvalidServiceOrderPayload)
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWith(c, h.log, mapServiceOrderError(err))
		return
	}
	h.log.Info("[service-order][handler] create success", zap.String("service_order_id", o.ID))
	c.JSON(http.StatusCreated, response.FromServiceOrder(o))
}

// GetByID godoc
// @Summary      Get a service order
// @Tags         service-orders
// @Produce      json
// @Param        id   path      string  true  "Service order ID"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id} [get]
func (h *ServiceOrderHandler) GetByID(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, h.log, mapServiceOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

// UpdateStatus godoc
// @Summary      Change a service order status
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Service order ID"
// @Param        status  body      request.StatusRequest  true  "aberta, em_andamento, concluida or cancelada"
// @Success      200     {object}  response.ServiceOrderResponse
// @Security     Bearer
// @Router       /service-orders/{id}/status [patch]
func (h *ServiceOrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.log, errInvalidRequest)
		return
	}

	o, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.ServiceOrderStatus(payload.Normalized()))
	if err != nil {
		abortWith(c, h.log, mapServiceOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

// ListByTechnician godoc
// @Summary      List a technician's service orders
// @Tags         service-orders
// @Produce      json
// @Param        id   path      string  true  "Technician ID"
// @Success      200  {array}   response.ServiceOrderResponse
// @Router       /technicians/{id}/service-orders [get]
func (h *ServiceOrderHandler) ListByTechnician(c *gin.Context) {
	orders, err := h.usecase.ListByTechnicianID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, h.log, mapServiceOrderError(err))
		return
	}
	out := make([]response.ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, response.FromServiceOrder(o))
	}
	c.JSON(http.StatusOK, out)
}

func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceOrderID), errors.Is(err, usecase.ErrInvalidTechnicianID):
		return errInvalidRequest
	case errors.Is(err, entities.ErrInvalidCPF):
		return pkg.NewDomainErrorSimple("INVALID_CPF", "Invalid CPF", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidCNPJ):
		return pkg.NewDomainErrorSimple("INVALID_CNPJ", "Invalid CNPJ", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceOrderInput):
		return errInvalidServiceOrderPayload
	case errors.Is(err, usecase.ErrInvalidServiceOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid service order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotApproved):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_APPROVED", "Budget not approved", http.StatusConflict)
	default:
		return internalError(err)
	}
}
