package interfaces

import (
	"context"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

// IBillingPaymentRepository abstracts DynamoDB persistence for BillingPayment.
type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BillingPayment, error)
}
