package interfaces

import (
	"context"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

type IServiceCallRepository interface {
	Create(ctx context.Context, s entities.ServiceCall) (entities.ServiceCall, error)
	GetByID(ctx context.Context, id string) (entities.ServiceCall, error)
	List(ctx context.Context) ([]entities.ServiceCall, error)
}
