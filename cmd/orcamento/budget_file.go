package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/contact"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var errReadOnlyRates = errors.New("rates are read from the budget file")

// budgetFile is the YAML document read by every subcommand. The technician's
// rate table travels in the same file under "expenses".
type budgetFile struct {
	TechnicianID    string               `yaml:"technician_id"`
	CustomerID      string               `yaml:"customer_id"`
	CustomerEmail   string               `yaml:"customer_email"`
	ServiceCallID   string               `yaml:"service_call_id"`
	VisitFee        float64              `yaml:"visit_fee"`
	LaborHours      float64              `yaml:"labor_hours"`
	LaborRate       float64              `yaml:"labor_rate"`
	Items           []budgetFileItem     `yaml:"items"`
	Trip            budgetFileTrip       `yaml:"trip"`
	Extras          []budgetFileExtra    `yaml:"extras"`
	DiscountPercent float64              `yaml:"discount_percent"`
	Origin          *contact.Coordinates `yaml:"origin"`
	Destination     *contact.Coordinates `yaml:"destination"`
	Notes           string               `yaml:"notes"`
	Expenses        budgetFileRates      `yaml:"expenses"`
}

type budgetFileItem struct {
	Description string  `yaml:"description"`
	Quantity    int     `yaml:"quantity"`
	UnitPrice   float64 `yaml:"unit_price"`
}

type budgetFileTrip struct {
	DistanceKm    float64 `yaml:"distance_km"`
	WorkDays      int     `yaml:"work_days"`
	Tolls         int     `yaml:"tolls"`
	ParkingEvents int     `yaml:"parking_events"`
	BusTickets    int     `yaml:"bus_tickets"`
	Flights       int     `yaml:"flights"`
}

type budgetFileExtra struct {
	Description string  `yaml:"description"`
	Value       float64 `yaml:"value"`
}

type budgetFileRates struct {
	RatePerKm           float64 `yaml:"rate_per_km"`
	RatePerToll         float64 `yaml:"rate_per_toll"`
	RatePerParking      float64 `yaml:"rate_per_parking"`
	RatePerBusTicket    float64 `yaml:"rate_per_bus_ticket"`
	RatePerFlight       float64 `yaml:"rate_per_flight"`
	RatePerLodgingNight float64 `yaml:"rate_per_lodging_night"`
	RatePerMeal         float64 `yaml:"rate_per_meal"`
	ServiceRadiusKm     float64 `yaml:"service_radius_km"`
	TravelThresholdKm   float64 `yaml:"travel_threshold_km"`
}

func loadBudgetFile(path string) (budgetFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return budgetFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	var f budgetFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return budgetFile{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if f.TechnicianID == "" {
		f.TechnicianID = "local"
	}
	return f, nil
}

func (f budgetFile) toInput() usecase.BudgetInput {
	items := make([]usecase.BudgetItemInput, 0, len(f.Items))
	for _, it := range f.Items {
		items = append(items, usecase.BudgetItemInput{Description: it.Description, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	extras := make([]usecase.ExtraExpenseInput, 0, len(f.Extras))
	for _, e := range f.Extras {
		extras = append(extras, usecase.ExtraExpenseInput(e))
	}
	return usecase.BudgetInput{
		ServiceCallID:   f.ServiceCallID,
		TechnicianID:    f.TechnicianID,
		CustomerID:      f.CustomerID,
		CustomerEmail:   f.CustomerEmail,
		VisitFee:        f.VisitFee,
		LaborHours:      f.LaborHours,
		LaborRate:       f.LaborRate,
		Items:           items,
		Trip:            usecase.TripInput(f.Trip),
		Extras:          extras,
		DiscountPercent: f.DiscountPercent,
		Origin:          f.Origin,
		Destination:     f.Destination,
		Notes:           f.Notes,
	}
}

func (f budgetFile) rates() entities.ExpensesConfig {
	r := f.Expenses
	return entities.ExpensesConfig{
		TechnicianID:        f.TechnicianID,
		RatePerKm:           r.RatePerKm,
		RatePerToll:         r.RatePerToll,
		RatePerParking:      r.RatePerParking,
		RatePerBusTicket:    r.RatePerBusTicket,
		RatePerFlight:       r.RatePerFlight,
		RatePerLodgingNight: r.RatePerLodgingNight,
		RatePerMeal:         r.RatePerMeal,
		ServiceRadiusKm:     r.ServiceRadiusKm,
		TravelThresholdKm:   r.TravelThresholdKm,
	}
}

// fileRates serves the rate table of a budget file to the budget use case.
type fileRates struct {
	cfg entities.ExpensesConfig
}

func (r fileRates) GetByTechnicianID(_ context.Context, _ string) (entities.ExpensesConfig, error) {
	return r.cfg, nil
}

func (fileRates) Save(_ context.Context, _ entities.ExpensesConfig) (entities.ExpensesConfig, error) {
	return entities.ExpensesConfig{}, errReadOnlyRates
}

// calculate prices f through the same use case the API uses.
func calculate(ctx context.Context, f budgetFile, log *zap.Logger) (entities.Budget, error) {
	uc := usecase.NewBudgetUseCase(nil, fileRates{cfg: f.rates()}, nil, nil, log)
	return uc.Calculate(ctx, f.toInput())
}
