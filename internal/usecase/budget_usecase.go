package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/contact"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/pricing"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBudgetNotFound          = errors.New("budget not found")
	ErrInvalidBudgetID         = errors.New("invalid budget id")
	ErrInvalidBudgetInput      = errors.New("invalid budget input")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)

type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportPDF  ExportFormat = "pdf"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// Document is a rendered file ready to be downloaded.
type Document struct {
	Name        string
	ContentType string
	Body        []byte
}

type BudgetItemInput struct {
	ID          string
	Description string  `validate:"required"`
	Quantity    int     `validate:"gte=1"`
	UnitPrice   float64 `validate:"gte=0"`
}

type TripInput struct {
	DistanceKm    float64 `validate:"gte=0"`
	WorkDays      int     `validate:"gte=0"`
	Tolls         int     `validate:"gte=0"`
	ParkingEvents int     `validate:"gte=0"`
	BusTickets    int     `validate:"gte=0"`
	Flights       int     `validate:"gte=0"`
}

type ExtraExpenseInput struct {
	Description string  `validate:"required"`
	Value       float64 `validate:"gte=0"`
}

// BudgetInput carries everything needed to price a budget.
//
// When Trip.DistanceKm is zero and both Origin and Destination are set, the
// distance is derived from the coordinates. DiscountPercent is not bounded.
type BudgetInput struct {
	ServiceCallID   string
	TechnicianID    string `validate:"required"`
	CustomerID      string
	CustomerEmail   string            `validate:"omitempty,email"`
	VisitFee        float64           `validate:"gte=0"`
	LaborHours      float64           `validate:"gte=0"`
	LaborRate       float64           `validate:"gte=0"`
	Items           []BudgetItemInput `validate:"dive"`
	Trip            TripInput
	Extras          []ExtraExpenseInput `validate:"dive"`
	DiscountPercent float64
	Origin          *contact.Coordinates
	Destination     *contact.Coordinates
	Notes           string
}

// IBudgetUseCase exposes budget (orçamento) operations.
//
//   - Calculate prices a budget without persisting it
//   - Create persists a new pendente budget and e-mails it when possible
//   - Approve/Reject/Cancel change the status
//   - Recalculate replaces the inputs of an existing budget
type IBudgetUseCase interface {
	Calculate(ctx context.Context, in BudgetInput) (entities.Budget, error)
	Create(ctx context.Context, in BudgetInput) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Approve(ctx context.Context, id string) (entities.Budget, error)
	Reject(ctx context.Context, id string) (entities.Budget, error)
	Cancel(ctx context.Context, id string) (entities.Budget, error)
	Recalculate(ctx context.Context, id string, in BudgetInput) (entities.Budget, error)
	ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.Budget, error)
	Export(ctx context.Context, id string, format ExportFormat) (Document, error)
}

type BudgetUseCase struct {
	repo       interfaces.IBudgetRepository
	configRepo interfaces.IExpensesConfigRepository
	renderer   interfaces.IDocumentRenderer
	notifier   interfaces.IBudgetNotifier
	log        *zap.Logger
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

// NewBudgetUseCase wires the budget use case. notifier may be nil when e-mail is disabled.
func NewBudgetUseCase(
	repo interfaces.IBudgetRepository,
	configRepo interfaces.IExpensesConfigRepository,
	renderer interfaces.IDocumentRenderer,
	notifier interfaces.IBudgetNotifier,
	log *zap.Logger,
) *BudgetUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &BudgetUseCase{repo: repo, configRepo: configRepo, renderer: renderer, notifier: notifier, log: log}
}

func (u *BudgetUseCase) Calculate(ctx context.Context, in BudgetInput) (entities.Budget, error) {
	if err := validateInput(in, ErrInvalidBudgetInput); err != nil {
		return entities.Budget{}, err
	}

	technicianID := strings.TrimSpace(in.TechnicianID)
	cfg, err := u.configRepo.GetByTechnicianID(ctx, technicianID)
	if err != nil {
		u.log.Error("[budget][usecase] failed loading expenses config", zap.String("technician_id", technicianID), zap.Error(err))
		return entities.Budget{}, err
	}
	if cfg.TechnicianID == "" {
		u.log.Debug("[budget][usecase] no expenses config, using zero rates", zap.String("technician_id", technicianID))
		cfg = entities.ExpensesConfig{TechnicianID: technicianID}
	}

	return pricing.CalculateBudget(budgetFromInput(in), cfg), nil
}

func (u *BudgetUseCase) Create(ctx context.Context, in BudgetInput) (entities.Budget, error) {
	u.log.Info("[budget][usecase] create start", zap.String("technician_id", in.TechnicianID))
	b, err := u.Calculate(ctx, in)
	if err != nil {
		return entities.Budget{}, err
	}

	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.Status = entities.BudgetStatusPendente
	b.CreatedAt = now
	b.UpdatedAt = now

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		u.log.Error("[budget][usecase] repository create failed", zap.String("budget_id", b.ID), zap.Error(err))
		return entities.Budget{}, err
	}
	u.log.Info("[budget][usecase] create success",
		zap.String("budget_id", created.ID),
		zap.Float64("total", created.Breakdown.Total),
	)

	u.sendToCustomer(ctx, created)
	return created, nil
}

// sendToCustomer e-mails the budget PDF. Failures are logged and never fail the request.
func (u *BudgetUseCase) sendToCustomer(ctx context.Context, b entities.Budget) {
	if u.notifier == nil || u.renderer == nil || strings.TrimSpace(b.CustomerEmail) == "" {
		return
	}
	pdf, err := u.renderer.BudgetPDF(b)
	if err != nil {
		u.log.Warn("[budget][usecase] pdf render failed, e-mail skipped", zap.String("budget_id", b.ID), zap.Error(err))
		return
	}
	if err := u.notifier.SendBudget(ctx, b, pdf); err != nil {
		u.log.Warn("[budget][usecase] e-mail failed", zap.String("budget_id", b.ID), zap.Error(err))
		return
	}
	u.log.Info("[budget][usecase] e-mail sent", zap.String("budget_id", b.ID))
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) Approve(ctx context.Context, id string) (entities.Budget, error) {
	return u.updateStatus(ctx, id, entities.BudgetStatusAprovado)
}

func (u *BudgetUseCase) Reject(ctx context.Context, id string) (entities.Budget, error) {
	return u.updateStatus(ctx, id, entities.BudgetStatusRejeitado)
}

func (u *BudgetUseCase) Cancel(ctx context.Context, id string) (entities.Budget, error) {
	return u.updateStatus(ctx, id, entities.BudgetStatusCancelado)
}

func (u *BudgetUseCase) updateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	u.log.Info("[budget][usecase] status changed", zap.String("budget_id", id), zap.String("status", string(status)))
	return updated, nil
}

func (u *BudgetUseCase) Recalculate(ctx context.Context, id string, in BudgetInput) (entities.Budget, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}

	in.TechnicianID = existing.TechnicianID
	b, err := u.Calculate(ctx, in)
	if err != nil {
		return entities.Budget{}, err
	}
	b.ID = existing.ID
	b.Status = existing.Status
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	u.log.Info("[budget][usecase] recalculated",
		zap.String("budget_id", updated.ID),
		zap.Float64("previous_total", existing.Breakdown.Total),
		zap.Float64("total", updated.Breakdown.Total),
	)
	return updated, nil
}

func (u *BudgetUseCase) ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.Budget, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return nil, ErrInvalidTechnicianID
	}
	return u.repo.ListByTechnicianID(ctx, technicianID)
}

func (u *BudgetUseCase) Export(ctx context.Context, id string, format ExportFormat) (Document, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return Document{}, err
	}

	name := "orcamento-" + b.ID
	switch format {
	case ExportXLSX:
		body, err := u.renderer.BudgetXLSX(b)
		if err != nil {
			return Document{}, err
		}
		return Document{Name: name + ".xlsx", ContentType: ContentTypeXLSX, Body: body}, nil
	case ExportPDF:
		body, err := u.renderer.BudgetPDF(b)
		if err != nil {
			return Document{}, err
		}
		return Document{Name: name + ".pdf", ContentType: ContentTypePDF, Body: body}, nil
	}
	return Document{}, ErrUnsupportedExportFormat
}

func budgetFromInput(in BudgetInput) entities.Budget {
	items := make([]entities.BudgetItem, 0, len(in.Items))
	for _, it := range in.Items {
		id := strings.TrimSpace(it.ID)
		if id == "" {
			id = uuid.NewString()
		}
		items = append(items, entities.BudgetItem{
			ID:          id,
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	extras := make([]entities.ExtraExpense, 0, len(in.Extras))
	for _, e := range in.Extras {
		extras = append(extras, entities.ExtraExpense{Description: strings.TrimSpace(e.Description), Value: e.Value})
	}

	trip := entities.Trip{
		DistanceKm:    in.Trip.DistanceKm,
		WorkDays:      in.Trip.WorkDays,
		Tolls:         in.Trip.Tolls,
		ParkingEvents: in.Trip.ParkingEvents,
		BusTickets:    in.Trip.BusTickets,
		Flights:       in.Trip.Flights,
	}
	if trip.DistanceKm == 0 && in.Origin != nil && in.Destination != nil {
		trip.DistanceKm = pricing.RoundCents(contact.Distance(*in.Origin, *in.Destination))
	}

	return entities.Budget{
		ServiceCallID:   strings.TrimSpace(in.ServiceCallID),
		TechnicianID:    strings.TrimSpace(in.TechnicianID),
		CustomerID:      strings.TrimSpace(in.CustomerID),
		CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
		VisitFee:        in.VisitFee,
		LaborHours:      in.LaborHours,
		LaborRate:       in.LaborRate,
		Items:           items,
		Trip:            trip,
		Extras:          extras,
		DiscountPercent: in.DiscountPercent,
		Notes:           strings.TrimSpace(in.Notes),
	}
}
