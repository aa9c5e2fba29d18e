package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/dto/request"
	response "github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/dto/response"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"
	"github.com/Michaeldoss/apptecnico1-sub001/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errPaymentNotFound = pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)

// BillingPaymentHandler handles HTTP requests for budget payments.
type BillingPaymentHandler struct {
	usecase usecase.IBillingPaymentUseCase
	log     *zap.Logger
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, log *zap.Logger) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, log: loggerOrNop(log)}
}

// CreateByBudgetID godoc
// @Summary      Pay an approved budget through Mercado Pago
// @Description  The body is the Mercado Pago payment payload, optionally wrapped in {"mp_payload": ...}. transaction_amount is always the budget total.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        budget_id  path      string                               true  "Budget ID"
// @Param        payment    body      request.BillingPaymentCreateRequest  false "Mercado Pago payload"
// @Success      200        {object}  response.BillingPaymentResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payments/{budget_id} [post]
func (h *BillingPaymentHandler) CreateByBudgetID(c *gin.Context) {
	budgetID := c.Param("budget_id")
	h.log.Info("[payment][handler] create start", zap.String("budget_id", budgetID))

	raw, err := c.GetRawData()
	if err != nil {
		abortWith(c, h.log, errInvalidRequest)
		return
	}
	mpPayload, err := request.ParseMPPayload(raw)
	if err != nil {
		// mock mode accepts any body, so the use case decides
		h.log.Info("[payment][handler] unparsable payload", zap.String("budget_id", budgetID), zap.Error(err))
		mpPayload = nil
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), budgetID, mpPayload)
	if err != nil {
		h.log.Warn("[payment][handler] create failed", zap.String("budget_id", budgetID), zap.Error(err))
		abortWith(c, h.log, mapBillingPaymentError(err))
		return
	}
	h.log.Info("[payment][handler] create success",
		zap.String("budget_id", budgetID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
	)
	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetLatestByBudgetID godoc
// @Summary      Latest payment of a budget
// @Tags         payments
// @Produce      json
// @Param        budget_id  path      string  true  "Budget ID"
// @Success      200        {object}  response.BillingPaymentResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /payments/{budget_id} [get]
func (h *BillingPaymentHandler) GetLatestByBudgetID(c *gin.Context) {
	latest, err := h.usecase.GetLatestByBudgetID(c.Request.Context(), c.Param("budget_id"))
	if err != nil {
		abortWith(c, h.log, mapBillingPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

// GetByID godoc
// @Summary      One payment of a budget
// @Tags         payments
// @Produce      json
// @Param        budget_id   path      string  true  "Budget ID"
// @Param        payment_id  path      string  true  "Payment ID"
// @Success      200         {object}  response.BillingPaymentResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/{budget_id}/{payment_id} [get]
func (h *BillingPaymentHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		abortWith(c, h.log, mapBillingPaymentError(err))
		return
	}
	if p.BudgetID != strings.TrimSpace(c.Param("budget_id")) {
		abortWith(c, h.log, errPaymentNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(p))
}

// ListByBudgetID godoc
// @Summary      Every payment of a budget
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Budget ID"
// @Success      200  {array}   response.BillingPaymentResponse
// @Router       /budgets/{id}/payments [get]
func (h *BillingPaymentHandler) ListByBudgetID(c *gin.Context) {
	payments, err := h.usecase.ListByBudgetID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, h.log, mapBillingPaymentError(err))
		return
	}
	out := make([]response.BillingPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, response.FromBillingPayment(p))
	}
	c.JSON(http.StatusOK, out)
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentBudgetID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotApproved):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_APPROVED", "Budget not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return errPaymentNotFound
	default:
		return internalError(err)
	}
}
