package response

import (
	"strings"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/contact"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

type ServiceCallResponse struct {
	ID             string              `json:"id"`
	CustomerID     string              `json:"customer_id"`
	Title          string              `json:"title"`
	Description    string              `json:"description,omitempty"`
	EquipmentType  string              `json:"equipment_type,omitempty"`
	Category       string              `json:"category,omitempty"`
	City           string              `json:"city,omitempty"`
	Location       contact.Coordinates `json:"location"`
	MapsURL        string              `json:"maps_url,omitempty"`
	BudgetEstimate float64             `json:"budget_estimate"`
	Status         string              `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
}

// FromServiceCall resolves the call position, using fallback when the
// caller sent no coordinates.
func FromServiceCall(s entities.ServiceCall, fallback contact.Coordinates) ServiceCallResponse {
	loc := contact.Locate(s.Latitude, s.Longitude, fallback)
	var maps string
	switch {
	case s.Latitude != nil && s.Longitude != nil:
		maps = contact.MapsSearchURL(loc.String())
	case strings.TrimSpace(s.City) != "":
		maps = contact.MapsSearchURL(s.City)
	}
	return ServiceCallResponse{
		ID:             s.ID,
		CustomerID:     s.CustomerID,
		Title:          s.Title,
		Description:    s.Description,
		EquipmentType:  s.EquipmentType,
		Category:       s.Category,
		City:           s.City,
		Location:       loc,
		MapsURL:        maps,
		BudgetEstimate: s.BudgetEstimate,
		Status:         string(s.Status),
		CreatedAt:      s.CreatedAt,
	}
}

func FromServiceCalls(items []entities.ServiceCall, fallback contact.Coordinates) []ServiceCallResponse {
	out := make([]ServiceCallResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromServiceCall(s, fallback))
	}
	return out
}
