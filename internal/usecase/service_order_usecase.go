package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/pricing"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrServiceOrderNotFound      = errors.New("service order not found")
	ErrInvalidServiceOrderID     = errors.New("invalid service order id")
	ErrInvalidServiceOrderInput  = errors.New("invalid service order input")
	ErrInvalidServiceOrderStatus = errors.New("invalid service order status")
	ErrBudgetNotApproved         = errors.New("budget not approved")
)

type ServiceOrderItemInput struct {
	Code        string
	Description string  `validate:"required"`
	Quantity    int     `validate:"gte=1"`
	UnitPrice   float64 `validate:"gte=0"`
	Discount    float64 `validate:"gte=0"`
}

// ServiceOrderInput opens an order. With a BudgetID the budget must be
// approved; its parts become the order items when Items is empty.
type ServiceOrderInput struct {
	BudgetID        string
	TechnicianID    string      `validate:"required"`
	Customer        ClientInput `validate:"required"`
	Description     string
	Items           []ServiceOrderItemInput `validate:"dive"`
	DiscountPercent float64                 `validate:"gte=0"`
}

type IServiceOrderUseCase interface {
	Create(ctx context.Context, in ServiceOrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.ServiceOrderStatus) (entities.ServiceOrder, error)
	ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	repo       interfaces.IServiceOrderRepository
	budgetRepo interfaces.IBudgetRepository
	log        *zap.Logger
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository, budgetRepo interfaces.IBudgetRepository, log *zap.Logger) *ServiceOrderUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ServiceOrderUseCase{repo: repo, budgetRepo: budgetRepo, log: log}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in ServiceOrderInput) (entities.ServiceOrder, error) {
	if err := validateInput(in, ErrInvalidServiceOrderInput); err != nil {
		return entities.ServiceOrder{}, err
	}
	customer, err := in.Customer.ToClient()
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %w", ErrInvalidServiceOrderInput, err)
	}

	items := make([]entities.ServiceOrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entities.ServiceOrderItem{
			Code:        strings.TrimSpace(it.Code),
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
		})
	}

	budgetID := strings.TrimSpace(in.BudgetID)
	if budgetID != "" {
		b, err := u.budgetRepo.GetByID(ctx, budgetID)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		if b.ID == "" {
			return entities.ServiceOrder{}, ErrBudgetNotFound
		}
		if b.Status != entities.BudgetStatusAprovado {
			u.log.Info("[service-order][usecase] budget not approved", zap.String("budget_id", budgetID), zap.String("status", string(b.Status)))
			return entities.ServiceOrder{}, ErrBudgetNotApproved
		}
		if len(items) == 0 {
			for _, it := range b.Items {
				items = append(items, entities.ServiceOrderItem{
					Code:        it.ID,
					Description: it.Description,
					Quantity:    it.Quantity,
					UnitPrice:   it.UnitPrice,
				})
			}
		}
	}
	if len(items) == 0 {
		return entities.ServiceOrder{}, fmt.Errorf("%w: no items", ErrInvalidServiceOrderInput)
	}

	now := time.Now().UTC()
	o := pricing.CalculateServiceOrder(entities.ServiceOrder{
		ID:              uuid.NewString(),
		BudgetID:        budgetID,
		TechnicianID:    strings.TrimSpace(in.TechnicianID),
		Customer:        customer,
		Description:     strings.TrimSpace(in.Description),
		Items:           items,
		DiscountPercent: in.DiscountPercent,
		Status:          entities.ServiceOrderStatusAberta,
		CreatedAt:       now,
		UpdatedAt:       now,
	})

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		u.log.Error("[service-order][usecase] repository create failed", zap.String("service_order_id", o.ID), zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	u.log.Info("[service-order][usecase] created", zap.String("service_order_id", created.ID), zap.Float64("total", created.Total))
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

// UpdateStatus reassigns the status. Only enum membership is checked.
func (u *ServiceOrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.ServiceOrderStatus) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	if !status.Valid() {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return updated, nil
}

func (u *ServiceOrderUseCase) ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.ServiceOrder, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return nil, ErrInvalidTechnicianID
	}
	return u.repo.ListByTechnicianID(ctx, technicianID)
}
