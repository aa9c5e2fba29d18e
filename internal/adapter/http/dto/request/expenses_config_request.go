package request

import "github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"

type ExpensesConfigRequest struct {
	RatePerKm           float64 `json:"rate_per_km" binding:"gte=0"`
	RatePerToll         float64 `json:"rate_per_toll" binding:"gte=0"`
	RatePerParking      float64 `json:"rate_per_parking" binding:"gte=0"`
	RatePerBusTicket    float64 `json:"rate_per_bus_ticket" binding:"gte=0"`
	RatePerFlight       float64 `json:"rate_per_flight" binding:"gte=0"`
	RatePerLodgingNight float64 `json:"rate_per_lodging_night" binding:"gte=0"`
	RatePerMeal         float64 `json:"rate_per_meal" binding:"gte=0"`
	ServiceRadiusKm     float64 `json:"service_radius_km" binding:"gte=0"`
	TravelThresholdKm   float64 `json:"travel_threshold_km" binding:"gte=0"`
}

func (r ExpensesConfigRequest) ToInput() usecase.ExpensesConfigInput {
	return usecase.ExpensesConfigInput(r)
}
