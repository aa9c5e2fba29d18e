package entities

import "time"

// ExpensesConfig holds a technician's per-unit rates. It is read-only during a
// budget calculation and edited only through its own endpoint.
//
// Storage model (DynamoDB):
//   - PK: technician_id
type ExpensesConfig struct {
	TechnicianID        string    `json:"technician_id"`
	RatePerKm           float64   `json:"rate_per_km"`
	RatePerToll         float64   `json:"rate_per_toll"`
	RatePerParking      float64   `json:"rate_per_parking"`
	RatePerBusTicket    float64   `json:"rate_per_bus_ticket"`
	RatePerFlight       float64   `json:"rate_per_flight"`
	RatePerLodgingNight float64   `json:"rate_per_lodging_night"`
	RatePerMeal         float64   `json:"rate_per_meal"`
	ServiceRadiusKm     float64   `json:"service_radius_km"`
	TravelThresholdKm   float64   `json:"travel_threshold_km"`
	UpdatedAt           time.Time `json:"updated_at"`
}
