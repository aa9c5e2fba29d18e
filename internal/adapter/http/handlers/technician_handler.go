package handlers

import (
	"errors"
	"net/http"

	request "github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/dto/request"
	response "github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/dto/response"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"
	"github.com/Michaeldoss/apptecnico1-sub001/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TechnicianHandler serves the per-technician resources: the expenses rate
// table and the dashboard.
type TechnicianHandler struct {
	expenses  usecase.IExpensesConfigUseCase
	dashboard usecase.IDashboardUseCase
	log       *zap.Logger
}

func NewTechnicianHandler(expenses usecase.IExpensesConfigUseCase, dashboard usecase.IDashboardUseCase, log *zap.Logger) *TechnicianHandler {
	return &TechnicianHandler{expenses: expenses, dashboard: dashboard, log: loggerOrNop(log)}
}

// GetExpensesConfig godoc
// @Summary      Get a technician's expense rates
// @Tags         technicians
// @Produce      json
// @Param        id   path      string  true  "Technician ID"
// @Success      200  {object}  entities.ExpensesConfig
// @Router       /technicians/{id}/expenses-config [get]
func (h *TechnicianHandler) GetExpensesConfig(c *gin.Context) {
	cfg, err := h.expenses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, h.log, mapTechnicianError(err))
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// SaveExpensesConfig godoc
// @Summary      Replace a technician's expense rates
// @Tags         technicians
// @Accept       json
// @Produce      json
// @Param        id      path      string                         true  "Technician ID"
// @Param        config  body      request.ExpensesConfigRequest  true  "Rates"
// @Success      200     {object}  entities.ExpensesConfig
// @Failure      400     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /technicians/{id}/expenses-config [put]
func (h *TechnicianHandler) SaveExpensesConfig(c *gin.Context) {
	var payload request.ExpensesConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.log, errInvalidRequest)
		return
	}

	cfg, err := h.expenses.Save(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, h.log, mapTechnicianError(err))
		return
	}
	h.log.Info("[expenses][handler] saved", zap.String("technician_id", cfg.TechnicianID))
	c.JSON(http.StatusOK, cfg)
}

// Dashboard godoc
// @Summary      Technician dashboard
// @Tags         technicians
// @Produce      json
// @Param        id   path      string  true  "Technician ID"
// @Success      200  {object}  response.DashboardResponse
// @Router       /technicians/{id}/dashboard [get]
func (h *TechnicianHandler) Dashboard(c *gin.Context) {
	d, err := h.dashboard.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, h.log, mapTechnicianError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

func mapTechnicianError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTechnicianID):
		return pkg.NewDomainErrorSimple("INVALID_TECHNICIAN_ID", "Invalid technician id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidExpensesConfigInput):
		return pkg.NewDomainErrorSimple("INVALID_EXPENSES_CONFIG", "Invalid expenses config", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
