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

// AppointmentHandler serves the technician agenda. A conflicting appointment
// is still created; the response carries the flag.
type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
	log     *zap.Logger
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc, log: loggerOrNop(log)}
}

// Create godoc
// @Summary      Schedule an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        appointment  body      request.AppointmentRequest  true  "Appointment"
// @Success      201          {object}  response.AppointmentResponse
// @Failure      400          {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.log, errInvalidRequest)
		return
	}

	entry, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWith(c, h.log, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEntry(entry))
}

// ListByDay godoc
// @Summary      A technician's agenda for one day
// @Tags         appointments
// @Produce      json
// @Param        technician_id  query     string  true  "Technician ID"
// @Param        date           query     string  true  "YYYY-MM-DD"
// @Success      200            {array}   response.AppointmentResponse
// @Failure      400            {object}  pkg.HTTPError
// @Router       /appointments [get]
func (h *AppointmentHandler) ListByDay(c *gin.Context) {
	var q request.AgendaQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWith(c, h.log, errInvalidRequest)
		return
	}

	entries, err := h.usecase.ListByDay(c.Request.Context(), q.TechnicianID, q.Date)
	if err != nil {
		abortWith(c, h.log, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAgenda(entries))
}

// UpdateStatus godoc
// @Summary      Change an appointment status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Appointment ID"
// @Param        status  body      request.StatusRequest  true  "pending, confirmed, cancelled or completed"
// @Success      200     {object}  response.AppointmentResponse
// @Security     Bearer
// @Router       /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.log, errInvalidRequest)
		return
	}

	a, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.AppointmentStatus(payload.Normalized()))
	if err != nil {
		abortWith(c, h.log, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAppointment(a, false))
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentID), errors.Is(err, usecase.ErrInvalidTechnicianID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidAppointmentInput):
		return pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAppointmentStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid appointment status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
