package request

import (
	"strings"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"
)

type ServiceCallRequest struct {
	CustomerID     string   `json:"customer_id" binding:"required"`
	Title          string   `json:"title" binding:"required,max=120"`
	Description    string   `json:"description"`
	EquipmentType  string   `json:"equipment_type"`
	Category       string   `json:"category"`
	City           string   `json:"city"`
	Latitude       *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude" binding:"omitempty,longitude"`
	BudgetEstimate float64  `json:"budget_estimate" binding:"gte=0"`
}

func (r ServiceCallRequest) ToInput() usecase.ServiceCallInput {
	return usecase.ServiceCallInput{
		CustomerID:     strings.TrimSpace(r.CustomerID),
		Title:          strings.TrimSpace(r.Title),
		Description:    strings.TrimSpace(r.Description),
		EquipmentType:  strings.TrimSpace(r.EquipmentType),
		Category:       strings.TrimSpace(r.Category),
		City:           strings.TrimSpace(r.City),
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		BudgetEstimate: r.BudgetEstimate,
	}
}
