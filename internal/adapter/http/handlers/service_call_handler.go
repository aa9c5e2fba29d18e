package handlers

import (
	"errors"
	"net/http"

	request "github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/dto/request"
	response "github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/dto/response"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/contact"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"
	"github.com/Michaeldoss/apptecnico1-sub001/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceCallHandler serves service calls (chamados). Calls without
// coordinates are placed at fallback.
type ServiceCallHandler struct {
	usecase  usecase.IServiceCallUseCase
	fallback contact.Coordinates
	log      *zap.Logger
}

func NewServiceCallHandler(uc usecase.IServiceCallUseCase, fallback contact.Coordinates, log *zap.Logger) *ServiceCallHandler {
	return &ServiceCallHandler{usecase: uc, fallback: fallback, log: loggerOrNop(log)}
}

// Open godoc
// @Summary      Open a service call
// @Tags         service-calls
// @Accept       json
// @Produce      json
// @Param        call  body      request.ServiceCallRequest  true  "Service call"
// @Success      201   {object}  response.ServiceCallResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /service-calls [post]
func (h *ServiceCallHandler) Open(c *gin.Context) {
	var payload request.ServiceCallRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.log, errInvalidRequest)
		return
	}

	s, err := h.usecase.Open(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWith(c, h.log, mapServiceCallError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceCall(s, h.fallback))
}

// GetByID godoc
// @Summary      Get a service call
// @Tags         service-calls
// @Produce      json
// @Param        id   path      string  true  "Service call ID"
// @Success      200  {object}  response.ServiceCallResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-calls/{id} [get]
func (h *ServiceCallHandler) GetByID(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, h.log, mapServiceCallError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceCall(s, h.fallback))
}

// List godoc
// @Summary      Filter service calls
// @Tags         service-calls
// @Produce      json
// @Param        q         query     string  false  "Text matched against title, description and equipment"
// @Param        status    query     string  false  "Status or 'all'"
// @Param        category  query     string  false  "Category or 'all'"
// @Param        city      query     string  false  "City"
// @Param        sort      query     string  false  "created_at or budget_estimate"
// @Param        order     query     string  false  "asc or desc"
// @Success      200       {array}   response.ServiceCallResponse
// @Router       /service-calls [get]
func (h *ServiceCallHandler) List(c *gin.Context) {
	var q request.ServiceCallQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWith(c, h.log, errInvalidRequest)
		return
	}

	items, err := h.usecase.List(c.Request.Context(), q.ToCriteria())
	if err != nil {
		abortWith(c, h.log, mapServiceCallError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceCalls(items, h.fallback))
}

func mapServiceCallError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceCallID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidServiceCallInput):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_CALL_INPUT", "Invalid service call payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCriteria):
		return pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid filter or sort", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceCallNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_CALL_NOT_FOUND", "Service call not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
