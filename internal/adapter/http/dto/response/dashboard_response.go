package response

import (
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/pricing"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"
)

type DashboardResponse struct {
	TechnicianID            string                `json:"technician_id"`
	BudgetsByStatus         map[string]int        `json:"budgets_by_status"`
	PendingBudgetsTotal     float64               `json:"pending_budgets_total"`
	ApprovedBudgetsTotal    float64               `json:"approved_budgets_total"`
	ApprovedTotalFormatted  string                `json:"approved_total_formatted"`
	OpenServiceOrders       int                   `json:"open_service_orders"`
	UpcomingAppointments    []AppointmentResponse `json:"upcoming_appointments"`
	ConflictingAppointments []string              `json:"conflicting_appointments"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	byStatus := make(map[string]int, len(d.BudgetsByStatus))
	for status, n := range d.BudgetsByStatus {
		byStatus[string(status)] = n
	}
	conflicts := d.ConflictingAppointments
	if conflicts == nil {
		conflicts = []string{}
	}
	return DashboardResponse{
		TechnicianID:            d.TechnicianID,
		BudgetsByStatus:         byStatus,
		PendingBudgetsTotal:     d.PendingBudgetsTotal,
		ApprovedBudgetsTotal:    d.ApprovedBudgetsTotal,
		ApprovedTotalFormatted:  pricing.FormatBRL(d.ApprovedBudgetsTotal),
		OpenServiceOrders:       d.OpenServiceOrders,
		UpcomingAppointments:    FromAgenda(d.UpcomingAppointments),
		ConflictingAppointments: conflicts,
	}
}
