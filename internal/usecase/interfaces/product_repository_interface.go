package interfaces

import (
	"context"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

// IProductRepository abstracts the marketplace catalog.
//
// GetByIDs returns only the products that exist, in no particular order.
type IProductRepository interface {
	Create(ctx context.Context, p entities.MarketplaceProduct) (entities.MarketplaceProduct, error)
	GetByID(ctx context.Context, id string) (entities.MarketplaceProduct, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.MarketplaceProduct, error)
	List(ctx context.Context) ([]entities.MarketplaceProduct, error)
}
