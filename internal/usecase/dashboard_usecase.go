package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/calendar"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/pricing"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Dashboard summarizes a technician's current workload.
type Dashboard struct {
	TechnicianID            string                        `json:"technician_id"`
	BudgetsByStatus         map[entities.BudgetStatus]int `json:"budgets_by_status"`
	PendingBudgetsTotal     float64                       `json:"pending_budgets_total"`
	ApprovedBudgetsTotal    float64                       `json:"approved_budgets_total"`
	OpenServiceOrders       int                           `json:"open_service_orders"`
	UpcomingAppointments    []calendar.Entry              `json:"upcoming_appointments"`
	ConflictingAppointments []string                      `json:"conflicting_appointments"`
}

type IDashboardUseCase interface {
	Get(ctx context.Context, technicianID string) (Dashboard, error)
}

type DashboardUseCase struct {
	budgets      interfaces.IBudgetRepository
	orders       interfaces.IServiceOrderRepository
	appointments interfaces.IAppointmentRepository
	detector     calendar.Detector
	now          func() time.Time
	log          *zap.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	budgets interfaces.IBudgetRepository,
	orders interfaces.IServiceOrderRepository,
	appointments interfaces.IAppointmentRepository,
	detector calendar.Detector,
	log *zap.Logger,
) *DashboardUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardUseCase{
		budgets:      budgets,
		orders:       orders,
		appointments: appointments,
		detector:     detector,
		now:          time.Now,
		log:          log,
	}
}

// Get fetches budgets, orders and upcoming appointments concurrently. The
// first failing fetch cancels the others.
func (u *DashboardUseCase) Get(ctx context.Context, technicianID string) (Dashboard, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return Dashboard{}, ErrInvalidTechnicianID
	}

	loc := u.detector.Location
	if loc == nil {
		loc = time.UTC
	}
	today := u.now().In(loc).Format(entities.AppointmentDateLayout)

	var (
		budgets      []entities.Budget
		orders       []entities.ServiceOrder
		appointments []entities.Appointment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgets, err = u.budgets.ListByTechnicianID(gctx, technicianID)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = u.orders.ListByTechnicianID(gctx, technicianID)
		return err
	})
	g.Go(func() error {
		var err error
		appointments, err = u.appointments.ListFromDate(gctx, technicianID, today)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Error("[dashboard][usecase] fetch failed", zap.String("technician_id", technicianID), zap.Error(err))
		return Dashboard{}, err
	}

	d := Dashboard{
		TechnicianID:         technicianID,
		BudgetsByStatus:      map[entities.BudgetStatus]int{},
		UpcomingAppointments: []calendar.Entry{},
	}
	for _, b := range budgets {
		d.BudgetsByStatus[b.Status]++
		switch b.Status {
		case entities.BudgetStatusPendente:
			d.PendingBudgetsTotal += b.Breakdown.Total
		case entities.BudgetStatusAprovado:
			d.ApprovedBudgetsTotal += b.Breakdown.Total
		}
	}
	d.PendingBudgetsTotal = pricing.RoundCents(d.PendingBudgetsTotal)
	d.ApprovedBudgetsTotal = pricing.RoundCents(d.ApprovedBudgetsTotal)

	for _, o := range orders {
		if o.Status == entities.ServiceOrderStatusAberta || o.Status == entities.ServiceOrderStatusEmAndamento {
			d.OpenServiceOrders++
		}
	}

	active := make([]entities.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Status != entities.AppointmentStatusCancelled && a.Status != entities.AppointmentStatusCompleted {
			active = append(active, a)
		}
	}
	for _, date := range distinctDates(active) {
		d.UpcomingAppointments = append(d.UpcomingAppointments, u.detector.Agenda(active, date)...)
	}
	d.ConflictingAppointments = u.detector.Conflicts(active)
	if d.ConflictingAppointments == nil {
		d.ConflictingAppointments = []string{}
	}

	u.log.Debug("[dashboard][usecase] built",
		zap.String("technician_id", technicianID),
		zap.Int("budgets", len(budgets)),
		zap.Int("orders", len(orders)),
		zap.Int("appointments", len(active)),
	)
	return d, nil
}

// distinctDates returns the dates present in list in ascending order.
func distinctDates(list []entities.Appointment) []string {
	seen := map[string]bool{}
	var dates []string
	for _, a := range list {
		if !seen[a.Date] {
			seen[a.Date] = true
			dates = append(dates, a.Date)
		}
	}
	slices.Sort(dates)
	return dates
}
