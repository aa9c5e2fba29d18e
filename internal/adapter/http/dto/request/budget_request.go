package request

import (
	"strings"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/contact"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"
)

type BudgetItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gte=1"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
}

type TripRequest struct {
	DistanceKm    float64 `json:"distance_km" binding:"gte=0"`
	WorkDays      int     `json:"work_days" binding:"gte=0"`
	Tolls         int     `json:"tolls" binding:"gte=0"`
	ParkingEvents int     `json:"parking_events" binding:"gte=0"`
	BusTickets    int     `json:"bus_tickets" binding:"gte=0"`
	Flights       int     `json:"flights" binding:"gte=0"`
}

type ExtraExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Value       float64 `json:"value" binding:"gte=0"`
}

// BudgetRequest is the payload of the budget calculate, create and update routes.
//
// distance_km may be omitted when both origin and destination are sent.
type BudgetRequest struct {
	ServiceCallID   string                `json:"service_call_id"`
	TechnicianID    string                `json:"technician_id" binding:"required"`
	CustomerID      string                `json:"customer_id"`
	CustomerEmail   string                `json:"customer_email" binding:"omitempty,email"`
	VisitFee        float64               `json:"visit_fee" binding:"gte=0"`
	LaborHours      float64               `json:"labor_hours" binding:"gte=0"`
	LaborRate       float64               `json:"labor_rate" binding:"gte=0"`
	Items           []BudgetItemRequest   `json:"items" binding:"dive"`
	Trip            TripRequest           `json:"trip"`
	Extras          []ExtraExpenseRequest `json:"extras" binding:"dive"`
	DiscountPercent float64               `json:"discount_percent"`
	Origin          *contact.Coordinates  `json:"origin"`
	Destination     *contact.Coordinates  `json:"destination"`
	Notes           string                `json:"notes"`
}

func (r BudgetRequest) ToInput() usecase.BudgetInput {
	items := make([]usecase.BudgetItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.BudgetItemInput{
			ID:          strings.TrimSpace(it.ID),
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	extras := make([]usecase.ExtraExpenseInput, 0, len(r.Extras))
	for _, e := range r.Extras {
		extras = append(extras, usecase.ExtraExpenseInput{Description: strings.TrimSpace(e.Description), Value: e.Value})
	}
	return usecase.BudgetInput{
		ServiceCallID: strings.TrimSpace(r.ServiceCallID),
		TechnicianID:  strings.TrimSpace(r.TechnicianID),
		CustomerID:    strings.TrimSpace(r.CustomerID),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		VisitFee:      r.VisitFee,
		LaborHours:    r.LaborHours,
		LaborRate:     r.LaborRate,
		Items:         items,
		Trip: usecase.TripInput{
			DistanceKm:    r.Trip.DistanceKm,
			WorkDays:      r.Trip.WorkDays,
			Tolls:         r.Trip.Tolls,
			ParkingEvents: r.Trip.ParkingEvents,
			BusTickets:    r.Trip.BusTickets,
			Flights:       r.Trip.Flights,
		},
		Extras:          extras,
		DiscountPercent: r.DiscountPercent,
		Origin:          r.Origin,
		Destination:     r.Destination,
		Notes:           strings.TrimSpace(r.Notes),
	}
}
