package response

import (
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/pricing"
)

type BudgetItemResponse struct {
	ID          string  `json:"id,omitempty"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// BudgetResponse carries the breakdown rounded to cents plus the BRL-formatted total.
type BudgetResponse struct {
	ID              string                   `json:"id,omitempty"`
	ServiceCallID   string                   `json:"service_call_id,omitempty"`
	TechnicianID    string                   `json:"technician_id"`
	CustomerID      string                   `json:"customer_id,omitempty"`
	CustomerEmail   string                   `json:"customer_email,omitempty"`
	Items           []BudgetItemResponse     `json:"items"`
	Trip            entities.Trip            `json:"trip"`
	Extras          []entities.ExtraExpense  `json:"extras"`
	DiscountPercent float64                  `json:"discount_percent"`
	Breakdown       entities.BudgetBreakdown `json:"breakdown"`
	TotalFormatted  string                   `json:"total_formatted"`
	Notes           string                   `json:"notes,omitempty"`
	Status          string                   `json:"status,omitempty"`
	CreatedAt       *time.Time               `json:"created_at,omitempty"`
	UpdatedAt       *time.Time               `json:"updated_at,omitempty"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       pricing.RoundCents(it.Total),
		})
	}
	extras := b.Extras
	if extras == nil {
		extras = []entities.ExtraExpense{}
	}
	return BudgetResponse{
		ID:              b.ID,
		ServiceCallID:   b.ServiceCallID,
		TechnicianID:    b.TechnicianID,
		CustomerID:      b.CustomerID,
		CustomerEmail:   b.CustomerEmail,
		Items:           items,
		Trip:            b.Trip,
		Extras:          extras,
		DiscountPercent: b.DiscountPercent,
		Breakdown:       roundBreakdown(b.Breakdown),
		TotalFormatted:  pricing.FormatBRL(b.Breakdown.Total),
		Notes:           b.Notes,
		Status:          string(b.Status),
		CreatedAt:       timePtr(b.CreatedAt),
		UpdatedAt:       timePtr(b.UpdatedAt),
	}
}

func roundBreakdown(bd entities.BudgetBreakdown) entities.BudgetBreakdown {
	return entities.BudgetBreakdown{
		VisitFee:        pricing.RoundCents(bd.VisitFee),
		Labor:           pricing.RoundCents(bd.Labor),
		Parts:           pricing.RoundCents(bd.Parts),
		Travel:          pricing.RoundCents(bd.Travel),
		Lodging:         pricing.RoundCents(bd.Lodging),
		Meals:           pricing.RoundCents(bd.Meals),
		Extras:          pricing.RoundCents(bd.Extras),
		Subtotal:        pricing.RoundCents(bd.Subtotal),
		DiscountPercent: bd.DiscountPercent,
		DiscountValue:   pricing.RoundCents(bd.DiscountValue),
		Total:           pricing.RoundCents(bd.Total),
	}
}

// timePtr drops zero times so unsaved budgets omit their timestamps.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
