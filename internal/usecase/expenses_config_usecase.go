package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidTechnicianID        = errors.New("invalid technician id")
	ErrInvalidExpensesConfigInput = errors.New("invalid expenses config input")
)

type ExpensesConfigInput struct {
	RatePerKm           float64 `validate:"gte=0"`
	RatePerToll         float64 `validate:"gte=0"`
	RatePerParking      float64 `validate:"gte=0"`
	RatePerBusTicket    float64 `validate:"gte=0"`
	RatePerFlight       float64 `validate:"gte=0"`
	RatePerLodgingNight float64 `validate:"gte=0"`
	RatePerMeal         float64 `validate:"gte=0"`
	ServiceRadiusKm     float64 `validate:"gte=0"`
	TravelThresholdKm   float64 `validate:"gte=0"`
}

// IExpensesConfigUseCase reads and replaces a technician's rate table.
// A technician without a saved table gets zero rates.
type IExpensesConfigUseCase interface {
	Get(ctx context.Context, technicianID string) (entities.ExpensesConfig, error)
	Save(ctx context.Context, technicianID string, in ExpensesConfigInput) (entities.ExpensesConfig, error)
}

type ExpensesConfigUseCase struct {
	repo interfaces.IExpensesConfigRepository
	log  *zap.Logger
}

var _ IExpensesConfigUseCase = (*ExpensesConfigUseCase)(nil)

func NewExpensesConfigUseCase(repo interfaces.IExpensesConfigRepository, log *zap.Logger) *ExpensesConfigUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExpensesConfigUseCase{repo: repo, log: log}
}

func (u *ExpensesConfigUseCase) Get(ctx context.Context, technicianID string) (entities.ExpensesConfig, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return entities.ExpensesConfig{}, ErrInvalidTechnicianID
	}

	cfg, err := u.repo.GetByTechnicianID(ctx, technicianID)
	if err != nil {
		return entities.ExpensesConfig{}, err
	}
	if cfg.TechnicianID == "" {
		return entities.ExpensesConfig{TechnicianID: technicianID}, nil
	}
	return cfg, nil
}

func (u *ExpensesConfigUseCase) Save(ctx context.Context, technicianID string, in ExpensesConfigInput) (entities.ExpensesConfig, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return entities.ExpensesConfig{}, ErrInvalidTechnicianID
	}
	if err := validateInput(in, ErrInvalidExpensesConfigInput); err != nil {
		return entities.ExpensesConfig{}, err
	}

	saved, err := u.repo.Save(ctx, entities.ExpensesConfig{
		TechnicianID:        technicianID,
		RatePerKm:           in.RatePerKm,
		RatePerToll:         in.RatePerToll,
		RatePerParking:      in.RatePerParking,
		RatePerBusTicket:    in.RatePerBusTicket,
		RatePerFlight:       in.RatePerFlight,
		RatePerLodgingNight: in.RatePerLodgingNight,
		RatePerMeal:         in.RatePerMeal,
		ServiceRadiusKm:     in.ServiceRadiusKm,
		TravelThresholdKm:   in.TravelThresholdKm,
		UpdatedAt:           time.Now().UTC(),
	})
	if err != nil {
		u.log.Error("[expenses][usecase] save failed", zap.String("technician_id", technicianID), zap.Error(err))
		return entities.ExpensesConfig{}, err
	}
	u.log.Info("[expenses][usecase] saved", zap.String("technician_id", technicianID))
	return saved, nil
}
