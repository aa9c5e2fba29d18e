package request

import (
	"strings"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"
)

// CustomerRequest carries either a pessoa física (nome + cpf) or a pessoa
// jurídica (razao_social + cnpj), selected by kind.
type CustomerRequest struct {
	Kind         string `json:"kind" binding:"required,oneof=fisica juridica"`
	ID           string `json:"id"`
	Nome         string `json:"nome"`
	CPF          string `json:"cpf"`
	RazaoSocial  string `json:"razao_social"`
	NomeFantasia string `json:"nome_fantasia"`
	CNPJ         string `json:"cnpj"`
	Responsavel  string `json:"responsavel"`
	Email        string `json:"email" binding:"omitempty,email"`
	Telefone     string `json:"telefone"`
}

func (r CustomerRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{
		Kind:         entities.ClientKind(r.Kind),
		ID:           r.ID,
		Nome:         r.Nome,
		CPF:          r.CPF,
		RazaoSocial:  r.RazaoSocial,
		NomeFantasia: r.NomeFantasia,
		CNPJ:         r.CNPJ,
		Responsavel:  r.Responsavel,
		Email:        r.Email,
		Telefone:     r.Telefone,
	}
}

type ServiceOrderItemRequest struct {
	Code        string  `json:"code"`
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gte=1"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
	Discount    float64 `json:"discount" binding:"gte=0"`
}

type ServiceOrderRequest struct {
	BudgetID        string                    `json:"budget_id"`
	TechnicianID    string                    `json:"technician_id" binding:"required"`
	Customer        CustomerRequest           `json:"customer" binding:"required"`
	Description     string                    `json:"description"`
	Items           []ServiceOrderItemRequest `json:"items" binding:"dive"`
	DiscountPercent float64                   `json:"discount_percent" binding:"gte=0"`
}

func (r ServiceOrderRequest) ToInput() usecase.ServiceOrderInput {
	items := make([]usecase.ServiceOrderItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.ServiceOrderItemInput{
			Code:        strings.TrimSpace(it.Code),
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
		})
	}
	return usecase.ServiceOrderInput{
		BudgetID:        strings.TrimSpace(r.BudgetID),
		TechnicianID:    strings.TrimSpace(r.TechnicianID),
		Customer:        r.Customer.ToInput(),
		Description:     strings.TrimSpace(r.Description),
		Items:           items,
		DiscountPercent: r.DiscountPercent,
	}
}

// StatusRequest is the body of every PATCH .../status route.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusRequest) Normalized() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
