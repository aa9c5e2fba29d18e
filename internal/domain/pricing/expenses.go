package pricing

import (
	"fmt"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

// TravelExpense bills distance only when it is strictly above the threshold.
func TravelExpense(distanceKm, ratePerKm, thresholdKm float64) float64 {
	if distanceKm > thresholdKm {
		return distanceKm * ratePerKm
	}
	return 0
}

// LodgingExpense bills workDays-1 nights; single-day jobs never pay lodging.
func LodgingExpense(workDays int, ratePerNight float64) float64 {
	if workDays > 1 {
		return float64(workDays-1) * ratePerNight
	}
	return 0
}

// MealExpense charges one meal per work day.
func MealExpense(workDays int, ratePerMeal float64) float64 {
	return float64(workDays) * ratePerMeal
}

func TotalExtras(extras []entities.ExtraExpense) float64 {
	var total float64
	for _, e := range extras {
		total += e.Value
	}
	return total
}

// ExpenseBreakdown is the itemized result of Aggregate.
//
// Extras contains the per-event charges (tolls, parking, tickets, flights)
// followed by the freeform extras, so ExtrasTotal == TotalExtras(Extras).
type ExpenseBreakdown struct {
	Travel      float64                 `json:"travel"`
	Lodging     float64                 `json:"lodging"`
	Meals       float64                 `json:"meals"`
	Extras      []entities.ExtraExpense `json:"extras"`
	ExtrasTotal float64                 `json:"extras_total"`
	Total       float64                 `json:"total"`
}

// Aggregate combines the technician's configured rates with the trip parameters.
func Aggregate(cfg entities.ExpensesConfig, trip entities.Trip, extras []entities.ExtraExpense) ExpenseBreakdown {
	all := eventExpenses(cfg, trip)
	all = append(all, extras...)

	b := ExpenseBreakdown{
		Travel:  TravelExpense(trip.DistanceKm, cfg.RatePerKm, cfg.TravelThresholdKm),
		Lodging: LodgingExpense(trip.WorkDays, cfg.RatePerLodgingNight),
		Meals:   MealExpense(trip.WorkDays, cfg.RatePerMeal),
		Extras:  all,
	}
	b.ExtrasTotal = TotalExtras(all)
	b.Total = b.Travel + b.Lodging + b.Meals + b.ExtrasTotal
	return b
}

func eventExpenses(cfg entities.ExpensesConfig, trip entities.Trip) []entities.ExtraExpense {
	events := []struct {
		label string
		count int
		rate  float64
	}{
		{"Pedágio", trip.Tolls, cfg.RatePerToll},
		{"Estacionamento", trip.ParkingEvents, cfg.RatePerParking},
		{"Passagem de ônibus", trip.BusTickets, cfg.RatePerBusTicket},
		{"Passagem aérea", trip.Flights, cfg.RatePerFlight},
	}

	out := make([]entities.ExtraExpense, 0, len(events))
	for _, ev := range events {
		if ev.count <= 0 || ev.rate == 0 {
			continue
		}
		out = append(out, entities.ExtraExpense{
			Description: fmt.Sprintf("%s (%dx)", ev.label, ev.count),
			Value:       float64(ev.count) * ev.rate,
		})
	}
	return out
}
