package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	request "github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/dto/request"
	response "github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/dto/response"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"
	"github.com/Michaeldoss/apptecnico1-sub001/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)

// BudgetHandler handles HTTP requests for budgets (orçamentos).
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
	log     *zap.Logger
}

func NewBudgetHandler(uc usecase.IBudgetUseCase, log *zap.Logger) *BudgetHandler {
	return &BudgetHandler{usecase: uc, log: loggerOrNop(log)}
}

// Calculate godoc
// @Summary      Price a budget without saving it
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        budget  body      request.BudgetRequest  true  "Budget inputs"
// @Success      200     {object}  response.BudgetResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /budgets/calculate [post]
func (h *BudgetHandler) Calculate(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.log, errInvalidBudgetPayload)
		return
	}

	b, err := h.usecase.Calculate(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWith(c, h.log, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// Create godoc
// @Summary      Create a pending budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        budget  body      request.BudgetRequest  true  "Budget inputs"
// @Success      201     {object}  response.BudgetResponse
// @Failure      400     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[budget][handler] invalid payload", zap.Error(err))
		abortWith(c, h.log, errInvalidBudgetPayload)
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWith(c, h.log, mapBudgetError(err))
		return
	}
	h.log.Info("[budget][handler] create success", zap.String("budget_id", b.ID))
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

// GetByID godoc
// @Summary      Get a budget
// @Tags         budgets
// @Produce      json
// @Param        id   path      string  true  "Budget ID"
// @Success      200  {object}  response.BudgetResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /budgets/{id} [get]
func (h *BudgetHandler) GetByID(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, h.log, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// Recalculate godoc
// @Summary      Replace the inputs of a budget and price it again
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Budget ID"
// @Param        budget  body      request.BudgetRequest  true  "Budget inputs"
// @Success      200     {object}  response.BudgetResponse
// @Failure      404     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /budgets/{id} [put]
func (h *BudgetHandler) Recalculate(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.log, errInvalidBudgetPayload)
		return
	}

	b, err := h.usecase.Recalculate(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, h.log, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// @Summary  Approve a budget
// @Tags     budgets
// @Param    id  path  string  true  "Budget ID"
// @Success  200  {object}  response.BudgetResponse
// @Security Bearer
// @Router   /budgets/{id}/approve [patch]
func (h *BudgetHandler) Approve(c *gin.Context) {
	h.changeStatus(c, h.usecase.Approve)
}

// @Summary  Reject a budget
// @Tags     budgets
// @Param    id  path  string  true  "Budget ID"
// @Success  200  {object}  response.BudgetResponse
// @Security Bearer
// @Router   /budgets/{id}/reject [patch]
func (h *BudgetHandler) Reject(c *gin.Context) {
	h.changeStatus(c, h.usecase.Reject)
}

// @Summary  Cancel a budget
// @Tags     budgets
// @Param    id  path  string  true  "Budget ID"
// @Success  200  {object}  response.BudgetResponse
// @Security Bearer
// @Router   /budgets/{id}/cancel [patch]
func (h *BudgetHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, h.usecase.Cancel)
}

func (h *BudgetHandler) changeStatus(c *gin.Context, updater func(ctx context.Context, id string) (entities.Budget, error)) {
	b, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, h.log, mapBudgetError(err))
		return
	}
	h.log.Info("[budget][handler] status changed", zap.String("budget_id", b.ID), zap.String("status", string(b.Status)))
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// ListByTechnician godoc
// @Summary      List a technician's budgets
// @Tags         budgets
// @Produce      json
// @Param        id   path      string  true  "Technician ID"
// @Success      200  {array}   response.BudgetResponse
// @Router       /technicians/{id}/budgets [get]
func (h *BudgetHandler) ListByTechnician(c *gin.Context) {
	budgets, err := h.usecase.ListByTechnicianID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, h.log, mapBudgetError(err))
		return
	}
	out := make([]response.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, response.FromBudget(b))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary   Download a budget as XLSX
// @Tags      budgets
// @Produce   application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param     id  path  string  true  "Budget ID"
// @Success   200  {file}  file
// @Router    /budgets/{id}/export.xlsx [get]
func (h *BudgetHandler) ExportXLSX(c *gin.Context) {
	h.export(c, usecase.ExportXLSX)
}

// @Summary   Download a budget as PDF
// @Tags      budgets
// @Produce   application/pdf
// @Param     id  path  string  true  "Budget ID"
// @Success   200  {file}  file
// @Router    /budgets/{id}/export.pdf [get]
func (h *BudgetHandler) ExportPDF(c *gin.Context) {
	h.export(c, usecase.ExportPDF)
}

func (h *BudgetHandler) export(c *gin.Context, format usecase.ExportFormat) {
	doc, err := h.usecase.Export(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		abortWith(c, h.log, mapBudgetError(err))
		return
	}
	sendDocument(c, doc)
}

func sendDocument(c *gin.Context, doc usecase.Document) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrUnsupportedExportFormat):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidBudgetInput):
		return errInvalidBudgetPayload
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTechnicianID):
		return pkg.NewDomainErrorSimple("INVALID_TECHNICIAN_ID", "Invalid technician id", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
