package response

import (
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/contact"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/pricing"
)

type CustomerResponse struct {
	Kind        string        `json:"kind"`
	ID          string        `json:"id,omitempty"`
	DisplayName string        `json:"display_name"`
	Document    string        `json:"document"`
	Email       string        `json:"email,omitempty"`
	Telefone    string        `json:"telefone,omitempty"`
	Responsavel string        `json:"responsavel,omitempty"`
	Links       contact.Links `json:"links"`
}

type ServiceOrderResponse struct {
	ID              string                      `json:"id"`
	BudgetID        string                      `json:"budget_id,omitempty"`
	TechnicianID    string                      `json:"technician_id"`
	Customer        *CustomerResponse           `json:"customer,omitempty"`
	Description     string                      `json:"description,omitempty"`
	Items           []entities.ServiceOrderItem `json:"items"`
	DiscountPercent float64                     `json:"discount_percent"`
	Subtotal        float64                     `json:"subtotal"`
	DiscountValue   float64                     `json:"discount_value"`
	Total           float64                     `json:"total"`
	TotalFormatted  string                      `json:"total_formatted"`
	Status          string                      `json:"status"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	items := o.Items
	if items == nil {
		items = []entities.ServiceOrderItem{}
	}
	return ServiceOrderResponse{
		ID:              o.ID,
		BudgetID:        o.BudgetID,
		TechnicianID:    o.TechnicianID,
		Customer:        fromClient(o.Customer, "Olá! Sobre a ordem de serviço "+shortID(o.ID)),
		Description:     o.Description,
		Items:           items,
		DiscountPercent: o.DiscountPercent,
		Subtotal:        pricing.RoundCents(o.Subtotal),
		DiscountValue:   pricing.RoundCents(o.DiscountValue),
		Total:           pricing.RoundCents(o.Total),
		TotalFormatted:  pricing.FormatBRL(o.Total),
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func fromClient(c entities.Client, message string) *CustomerResponse {
	if c == nil {
		return nil
	}
	email, phone := c.Contact()
	out := &CustomerResponse{
		Kind:        string(c.Kind()),
		ID:          c.ClientID(),
		DisplayName: c.DisplayName(),
		Document:    c.Document(),
		Email:       email,
		Telefone:    phone,
		Links:       contact.ForClient(c, "", message),
	}
	if pj, ok := c.(entities.PessoaJuridica); ok {
		out.Responsavel = pj.Responsavel
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
