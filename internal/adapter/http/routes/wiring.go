package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/handlers"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/persistence/repository"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/calendar"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/contact"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/config"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/database"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/export"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/mail"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/payments"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// BuildHandlers wires repositories, use cases and handlers on top of ddb.
func BuildHandlers(cfg *config.Config, ddb repository.DynamoAPI, log *zap.Logger) Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	budgetRepo := repository.NewBudgetDynamoRepository(ddb, cfg.Tables.Budgets)
	orderRepo := repository.NewServiceOrderDynamoRepository(ddb, cfg.Tables.ServiceOrders)
	productRepo := repository.NewProductDynamoRepository(ddb, cfg.Tables.Products)
	callRepo := repository.NewServiceCallDynamoRepository(ddb, cfg.Tables.ServiceCalls)
	appointmentRepo := repository.NewAppointmentDynamoRepository(ddb, cfg.Tables.Appointments)
	expensesRepo := repository.NewExpensesConfigDynamoRepository(ddb, cfg.Tables.ExpensesConfigs)
	paymentRepo := repository.NewBillingPaymentDynamoRepository(ddb, cfg.Tables.Payments)

	renderer := export.Renderer{}
	detector := calendar.Detector{
		Policy:   calendar.ParsePolicy(cfg.Calendar.ConflictPolicy),
		Location: cfg.Calendar.Location(),
	}

	var notifier interfaces.IBudgetNotifier
	if cfg.Mail.Enabled {
		notifier = mail.NewBudgetMailer(cfg.Mail)
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments, log)
	if err != nil {
		log.Warn("[routes] mercado pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, expensesRepo, renderer, notifier, log)
	expensesUseCase := usecase.NewExpensesConfigUseCase(expensesRepo, log)
	dashboardUseCase := usecase.NewDashboardUseCase(budgetRepo, orderRepo, appointmentRepo, detector, log)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, budgetRepo, log)
	productUseCase := usecase.NewProductUseCase(productRepo, renderer, log)
	callUseCase := usecase.NewServiceCallUseCase(callRepo, log)
	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo, detector, log)
	paymentUseCase := usecase.NewBillingPaymentUseCase(paymentRepo, budgetRepo, gateway, cfg.Payments, log)

	fallback := contact.Coordinates{Latitude: cfg.Geo.DefaultLatitude, Longitude: cfg.Geo.DefaultLongitude}

	return Handlers{
		Budget:       handlers.NewBudgetHandler(budgetUseCase, log),
		Technician:   handlers.NewTechnicianHandler(expensesUseCase, dashboardUseCase, log),
		ServiceOrder: handlers.NewServiceOrderHandler(orderUseCase, log),
		Product:      handlers.NewProductHandler(productUseCase, log),
		ServiceCall:  handlers.NewServiceCallHandler(callUseCase, fallback, log),
		Appointment:  handlers.NewAppointmentHandler(appointmentUseCase, log),
		Payment:      handlers.NewBillingPaymentHandler(paymentUseCase, log),
	}
}

// Run connects to DynamoDB, serves the API on cfg.Server.Port and shuts the
// server down gracefully once ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}
	if cfg.AWS.Endpoint != "" {
		if err := database.EnsureTables(ctx, ddb, database.Tables(cfg.Tables), log); err != nil {
			return fmt.Errorf("ensure tables: %w", err)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           NewRouter(cfg, BuildHandlers(cfg, ddb, log), log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[routes] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start the application: %w", err)
	case <-ctx.Done():
	}

	log.Info("[routes] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
