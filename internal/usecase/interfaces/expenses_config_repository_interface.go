package interfaces

import (
	"context"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

// IExpensesConfigRepository stores one rate table per technician.
type IExpensesConfigRepository interface {
	GetByTechnicianID(ctx context.Context, technicianID string) (entities.ExpensesConfig, error)
	Save(ctx context.Context, cfg entities.ExpensesConfig) (entities.ExpensesConfig, error)
}
