package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/catalog"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrServiceCallNotFound     = errors.New("service call not found")
	ErrInvalidServiceCallID    = errors.New("invalid service call id")
	ErrInvalidServiceCallInput = errors.New("invalid service call input")
)

type ServiceCallInput struct {
	CustomerID     string `validate:"required"`
	Title          string `validate:"required,max=120"`
	Description    string
	EquipmentType  string
	Category       string
	City           string
	Latitude       *float64 `validate:"omitempty,latitude"`
	Longitude      *float64 `validate:"omitempty,longitude"`
	BudgetEstimate float64  `validate:"gte=0"`
}

type IServiceCallUseCase interface {
	Open(ctx context.Context, in ServiceCallInput) (entities.ServiceCall, error)
	GetByID(ctx context.Context, id string) (entities.ServiceCall, error)
	List(ctx context.Context, c catalog.Criteria) ([]entities.ServiceCall, error)
}

type ServiceCallUseCase struct {
	repo interfaces.IServiceCallRepository
	log  *zap.Logger
}

var _ IServiceCallUseCase = (*ServiceCallUseCase)(nil)

func NewServiceCallUseCase(repo interfaces.IServiceCallRepository, log *zap.Logger) *ServiceCallUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ServiceCallUseCase{repo: repo, log: log}
}

func (u *ServiceCallUseCase) Open(ctx context.Context, in ServiceCallInput) (entities.ServiceCall, error) {
	if err := validateInput(in, ErrInvalidServiceCallInput); err != nil {
		return entities.ServiceCall{}, err
	}
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return entities.ServiceCall{}, fmt.Errorf("%w: latitude and longitude go together", ErrInvalidServiceCallInput)
	}

	s := entities.ServiceCall{
		ID:             uuid.NewString(),
		CustomerID:     strings.TrimSpace(in.CustomerID),
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		EquipmentType:  strings.TrimSpace(in.EquipmentType),
		Category:       strings.TrimSpace(in.Category),
		City:           strings.TrimSpace(in.City),
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		BudgetEstimate: in.BudgetEstimate,
		Status:         entities.ServiceCallStatusAberto,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		u.log.Error("[service-call][usecase] repository create failed", zap.String("service_call_id", s.ID), zap.Error(err))
		return entities.ServiceCall{}, err
	}
	u.log.Info("[service-call][usecase] opened", zap.String("service_call_id", created.ID), zap.String("city", created.City))
	return created, nil
}

func (u *ServiceCallUseCase) GetByID(ctx context.Context, id string) (entities.ServiceCall, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceCall{}, ErrInvalidServiceCallID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceCall{}, err
	}
	if s.ID == "" {
		return entities.ServiceCall{}, ErrServiceCallNotFound
	}
	return s, nil
}

func (u *ServiceCallUseCase) List(ctx context.Context, c catalog.Criteria) ([]entities.ServiceCall, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out, err := catalog.ServiceCalls(all, c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCriteria, err)
	}
	return out, nil
}
