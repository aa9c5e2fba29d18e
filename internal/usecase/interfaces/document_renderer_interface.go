package interfaces

import "github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"

// IDocumentRenderer turns budgets and the inventory into downloadable files.
type IDocumentRenderer interface {
	BudgetXLSX(b entities.Budget) ([]byte, error)
	BudgetPDF(b entities.Budget) ([]byte, error)
	ProductsXLSX(items []entities.MarketplaceProduct) ([]byte, error)
}
