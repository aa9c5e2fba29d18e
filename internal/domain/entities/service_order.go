package entities

import "time"

type ServiceOrderStatus string

const (
	ServiceOrderStatusAberta      ServiceOrderStatus = "aberta"
	ServiceOrderStatusEmAndamento ServiceOrderStatus = "em_andamento"
	ServiceOrderStatusConcluida   ServiceOrderStatus = "concluida"
	ServiceOrderStatusCancelada   ServiceOrderStatus = "cancelada"
)

func (s ServiceOrderStatus) Valid() bool {
	switch s {
	case ServiceOrderStatusAberta, ServiceOrderStatusEmAndamento, ServiceOrderStatusConcluida, ServiceOrderStatusCancelada:
		return true
	}
	return false
}

// ServiceOrderItem is an itemized line of a service order. Total is never negative.
type ServiceOrderItem struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

// ServiceOrder (ordem de serviço) is the confirmed record of work.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (technician_id-index): technician_id
type ServiceOrder struct {
	ID              string             `json:"id"`
	BudgetID        string             `json:"budget_id,omitempty"`
	TechnicianID    string             `json:"technician_id"`
	Customer        Client             `json:"-"`
	Description     string             `json:"description"`
	Items           []ServiceOrderItem `json:"items"`
	DiscountPercent float64            `json:"discount_percent"`
	Subtotal        float64            `json:"subtotal"`
	DiscountValue   float64            `json:"discount_value"`
	Total           float64            `json:"total"`
	Status          ServiceOrderStatus `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
