package interfaces

import (
	"context"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

// IBudgetNotifier delivers a rendered budget to its customer.
type IBudgetNotifier interface {
	SendBudget(ctx context.Context, b entities.Budget, pdf []byte) error
}
