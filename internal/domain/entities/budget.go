package entities

import "time"

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Domain notes:
//   - A budget is the priced proposal sent to the customer before a service order exists.
//   - Transitions are driven by customer/technician actions and are not validated beyond
//     enum membership.

type BudgetStatus string

const (
	BudgetStatusPendente  BudgetStatus = "pendente"
	BudgetStatusAprovado  BudgetStatus = "aprovado"
	BudgetStatusRejeitado BudgetStatus = "rejeitado"
	BudgetStatusCancelado BudgetStatus = "cancelado"
)

// BudgetItem is a parts line of a budget. Total is always re-derived from
// Quantity and UnitPrice.
type BudgetItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// ExtraExpense is a freeform named cost added to a budget.
type ExtraExpense struct {
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

// Trip holds the displacement parameters of a job. The event counters are
// billed through the technician's per-event rates.
type Trip struct {
	DistanceKm    float64 `json:"distance_km"`
	WorkDays      int     `json:"work_days"`
	Tolls         int     `json:"tolls"`
	ParkingEvents int     `json:"parking_events"`
	BusTickets    int     `json:"bus_tickets"`
	Flights       int     `json:"flights"`
}

// BudgetBreakdown is the itemized result of a budget calculation.
type BudgetBreakdown struct {
	VisitFee        float64 `json:"visit_fee"`
	Labor           float64 `json:"labor"`
	Parts           float64 `json:"parts"`
	Travel          float64 `json:"travel"`
	Lodging         float64 `json:"lodging"`
	Meals           float64 `json:"meals"`
	Extras          float64 `json:"extras"`
	Subtotal        float64 `json:"subtotal"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountValue   float64 `json:"discount_value"`
	Total           float64 `json:"total"`
}

// Budget is the priced proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (technician_id-index): technician_id
//
// Monetary representation:
//   - Breakdown keeps every intermediate figure; Breakdown.Total is what the customer pays.
type Budget struct {
	ID              string          `json:"id"`
	ServiceCallID   string          `json:"service_call_id"`
	TechnicianID    string          `json:"technician_id"`
	CustomerID      string          `json:"customer_id"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	VisitFee        float64         `json:"visit_fee"`
	LaborHours      float64         `json:"labor_hours"`
	LaborRate       float64         `json:"labor_rate"`
	Items           []BudgetItem    `json:"items"`
	Trip            Trip            `json:"trip"`
	Extras          []ExtraExpense  `json:"extras"`
	DiscountPercent float64         `json:"discount_percent"`
	Breakdown       BudgetBreakdown `json:"breakdown"`
	Notes           string          `json:"notes,omitempty"`
	Status          BudgetStatus    `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
