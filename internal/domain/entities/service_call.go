package entities

import "time"

type ServiceCallStatus string

const (
	ServiceCallStatusAberto        ServiceCallStatus = "aberto"
	ServiceCallStatusEmAtendimento ServiceCallStatus = "em_atendimento"
	ServiceCallStatusConcluido     ServiceCallStatus = "concluido"
	ServiceCallStatusCancelado     ServiceCallStatus = "cancelado"
)

// ServiceCall (chamado) is a customer's request for a technical visit.
//
// Storage model (DynamoDB):
//   - PK: id
type ServiceCall struct {
	ID             string            `json:"id"`
	CustomerID     string            `json:"customer_id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	EquipmentType  string            `json:"equipment_type"`
	Category       string            `json:"category"`
	City           string            `json:"city"`
	Latitude       *float64          `json:"latitude,omitempty"`
	Longitude      *float64          `json:"longitude,omitempty"`
	BudgetEstimate float64           `json:"budget_estimate"`
	Status         ServiceCallStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}
