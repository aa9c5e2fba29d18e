package routes

import (
	"net/http"

	_ "github.com/Michaeldoss/apptecnico1-sub001/docs"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/handlers"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/middleware"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathBudgets       = "/budgets"
	PathTechnicians   = "/technicians"
	PathServiceOrders = "/service-orders"
	PathProducts      = "/products"
	PathCart          = "/cart"
	PathServiceCalls  = "/service-calls"
	PathAppointments  = "/appointments"
	PathPayments      = "/payments"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Budget       *handlers.BudgetHandler
	Technician   *handlers.TechnicianHandler
	ServiceOrder *handlers.ServiceOrderHandler
	Product      *handlers.ProductHandler
	ServiceCall  *handlers.ServiceCallHandler
	Appointment  *handlers.AppointmentHandler
	Payment      *handlers.BillingPaymentHandler
}

// NewRouter builds the gin engine. Mutating routes require a bearer token
// unless auth is disabled in the configuration.
func NewRouter(cfg *config.Config, h Handlers, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(log), middleware.Recovery(log))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := middleware.Auth(cfg.Auth, log)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBudgetRoutes(v1, auth, h.Budget, h.Payment)
	addTechnicianRoutes(v1, auth, h)
	addServiceOrderRoutes(v1, auth, h.ServiceOrder)
	addProductRoutes(v1, auth, h.Product)
	addServiceCallRoutes(v1, auth, h.ServiceCall)
	addAppointmentRoutes(v1, auth, h.Appointment)
	addPaymentRoutes(v1, auth, h.Payment)

	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addBudgetRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.BudgetHandler, payments *handlers.BillingPaymentHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("/calculate", h.Calculate)
		budgets.POST("", auth, h.Create)
		budgets.GET("/:id", h.GetByID)
		budgets.PUT("/:id", auth, h.Recalculate)
		budgets.PATCH("/:id/approve", auth, h.Approve)
		budgets.PATCH("/:id/reject", auth, h.Reject)
		budgets.PATCH("/:id/cancel", auth, h.Cancel)
		budgets.GET("/:id/export.xlsx", h.ExportXLSX)
		budgets.GET("/:id/export.pdf", h.ExportPDF)
		budgets.GET("/:id/payments", payments.ListByBudgetID)
	}
}

func addTechnicianRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h Handlers) {
	technicians := rg.Group(PathTechnicians)
	{
		technicians.GET("/:id/expenses-config", h.Technician.GetExpensesConfig)
		technicians.PUT("/:id/expenses-config", auth, h.Technician.SaveExpensesConfig)
		technicians.GET("/:id/dashboard", h.Technician.Dashboard)
		technicians.GET("/:id/budgets", h.Budget.ListByTechnician)
		technicians.GET("/:id/service-orders", h.ServiceOrder.ListByTechnician)
	}
}

func addServiceOrderRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.ServiceOrderHandler) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", auth, h.Create)
		orders.GET("/:id", h.GetByID)
		orders.PATCH("/:id/status", auth, h.UpdateStatus)
	}
}

func addProductRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.ProductHandler) {
	products := rg.Group(PathProducts)
	{
		products.POST("", auth, h.Create)
		products.GET("", h.List)
		products.GET("/export.xlsx", h.ExportInventory)
		products.GET("/:id", h.GetByID)
	}
	rg.POST(PathCart+"/quote", h.QuoteCart)
}

func addServiceCallRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.ServiceCallHandler) {
	calls := rg.Group(PathServiceCalls)
	{
		calls.GET("", h.List)
		calls.POST("", auth, h.Open)
		calls.GET("/:id", h.GetByID)
	}
}

func addAppointmentRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.AppointmentHandler) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", auth, h.Create)
		appointments.GET("", h.ListByDay)
		appointments.PATCH("/:id/status", auth, h.UpdateStatus)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:budget_id", auth, h.CreateByBudgetID)
		payments.GET("/:budget_id", h.GetLatestByBudgetID)
		payments.GET("/:budget_id/:payment_id", h.GetByID)
	}
}
