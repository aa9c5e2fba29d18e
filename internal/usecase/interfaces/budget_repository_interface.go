package interfaces

import (
	"context"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Lookups return a zero Budget (empty ID) when nothing matches; updates do the
// same when the budget does not exist.
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
	ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.Budget, error)
}
