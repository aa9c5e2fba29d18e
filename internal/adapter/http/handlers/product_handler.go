package handlers

import (
	"errors"
	"net/http"

	request "github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/dto/request"
	response "github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/dto/response"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/pricing"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"
	"github.com/Michaeldoss/apptecnico1-sub001/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)

// ProductHandler serves the marketplace catalog and cart quotes.
type ProductHandler struct {
	usecase usecase.IProductUseCase
	log     *zap.Logger
}

func NewProductHandler(uc usecase.IProductUseCase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{usecase: uc, log: loggerOrNop(log)}
}

// Create godoc
// @Summary      List a product in the marketplace
// @Description  When price is omitted it is suggested from the costs and markup_percent.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      request.ProductRequest  true  "Product"
// @Success      201      {object}  response.ProductResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.log, errInvalidProductPayload)
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWith(c, h.log, mapProductError(err))
		return
	}
	h.log.Info("[product][handler] create success", zap.String("product_id", p.ID), zap.Float64("price", p.Price))
	c.JSON(http.StatusCreated, response.FromProduct(p))
}

// GetByID godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  response.ProductResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, h.log, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// List godoc
// @Summary      Search the catalog
// @Tags         products
// @Produce      json
// @Param        q          query     string  false  "Text matched against name and description"
// @Param        category   query     string  false  "Category or 'all'"
// @Param        equipment  query     string  false  "Compatible equipment"
// @Param        min_price  query     number  false  "Minimum price"
// @Param        max_price  query     number  false  "Maximum price"
// @Param        in_stock   query     bool    false  "Only products in stock"
// @Param        sort       query     string  false  "price, stock or created_at"
// @Param        order      query     string  false  "asc or desc"
// @Success      200        {array}   response.ProductResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var q request.ProductQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWith(c, h.log, errInvalidRequest)
		return
	}

	items, err := h.usecase.List(c.Request.Context(), q.ToCriteria())
	if err != nil {
		abortWith(c, h.log, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(items))
}

// ExportInventory godoc
// @Summary      Download the filtered catalog as XLSX
// @Tags         products
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /products/export.xlsx [get]
func (h *ProductHandler) ExportInventory(c *gin.Context) {
	var q request.ProductQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWith(c, h.log, errInvalidRequest)
		return
	}

	doc, err := h.usecase.ExportInventory(c.Request.Context(), q.ToCriteria())
	if err != nil {
		abortWith(c, h.log, mapProductError(err))
		return
	}
	sendDocument(c, doc)
}

// QuoteCart godoc
// @Summary      Price a cart against current stock
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        cart  body      request.CartQuoteRequest  true  "Cart items"
// @Success      200   {object}  response.CartQuoteResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /cart/quote [post]
func (h *ProductHandler) QuoteCart(c *gin.Context) {
	var payload request.CartQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.log, errInvalidRequest)
		return
	}

	quote, err := h.usecase.QuoteCart(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWith(c, h.log, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCartQuote(quote))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidCartInput), errors.Is(err, pricing.ErrInvalidCartQuantity):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidProductInput):
		return errInvalidProductPayload
	case errors.Is(err, usecase.ErrInvalidCriteria):
		return pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid filter or sort", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrOutOfStock):
		return pkg.NewDomainErrorSimple("OUT_OF_STOCK", "Product out of stock", http.StatusConflict)
	case errors.Is(err, pricing.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Insufficient stock", http.StatusConflict)
	default:
		return internalError(err)
	}
}
