package export

import "github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"

// Renderer exposes the package functions as a value that use cases can depend on.
type Renderer struct{}

func (Renderer) BudgetXLSX(b entities.Budget) ([]byte, error) { return BudgetXLSX(b) }

func (Renderer) BudgetPDF(b entities.Budget) ([]byte, error) { return BudgetPDF(b) }

func (Renderer) ProductsXLSX(items []entities.MarketplaceProduct) ([]byte, error) {
	return ProductsXLSX(items)
}
