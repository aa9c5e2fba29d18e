package catalog

import (
	"errors"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

var ErrUnknownSortField = errors.New("unknown sort field")

const (
	SortByPrice     = "price"
	SortByStock     = "stock"
	SortByCreatedAt = "created_at"
	SortByBudget    = "budget_estimate"
)

// Products applies c to a product collection.
func Products(items []entities.MarketplaceProduct, c Criteria) ([]entities.MarketplaceProduct, error) {
	var inStock Predicate[entities.MarketplaceProduct]
	if c.InStock {
		inStock = entities.MarketplaceProduct.InStock
	}
	var equipment Predicate[entities.MarketplaceProduct]
	if IsActive(c.Equipment) {
		equipment = func(p entities.MarketplaceProduct) bool { return p.CompatibleWith(c.Equipment) }
	}

	out := Filter(items,
		TextMatch(c.Query,
			func(p entities.MarketplaceProduct) string { return p.Name },
			func(p entities.MarketplaceProduct) string { return p.Description },
		),
		Equals(c.Category, func(p entities.MarketplaceProduct) string { return string(p.Category) }),
		Equals(c.VendorID, func(p entities.MarketplaceProduct) string { return p.VendorID }),
		InRange(c.Price, func(p entities.MarketplaceProduct) float64 { return p.Price }),
		equipment,
		inStock,
	)

	switch c.SortField {
	case "":
		return out, nil
	case SortByPrice:
		return SortBy(out, func(p entities.MarketplaceProduct) float64 { return p.Price }, c.Order), nil
	case SortByStock:
		return SortBy(out, func(p entities.MarketplaceProduct) int { return p.StockQuantity }, c.Order), nil
	case SortByCreatedAt:
		return SortBy(out, func(p entities.MarketplaceProduct) int64 { return p.CreatedAt.UnixNano() }, c.Order), nil
	}
	return nil, ErrUnknownSortField
}

// ServiceCalls applies c to a service call collection.
func ServiceCalls(items []entities.ServiceCall, c Criteria) ([]entities.ServiceCall, error) {
	out := Filter(items,
		TextMatch(c.Query,
			func(s entities.ServiceCall) string { return s.Title },
			func(s entities.ServiceCall) string { return s.Description },
			func(s entities.ServiceCall) string { return s.EquipmentType },
		),
		Equals(c.Status, func(s entities.ServiceCall) string { return string(s.Status) }),
		Equals(c.Category, func(s entities.ServiceCall) string { return s.Category }),
		Equals(c.Equipment, func(s entities.ServiceCall) string { return s.EquipmentType }),
		Equals(c.City, func(s entities.ServiceCall) string { return s.City }),
		InRange(c.Price, func(s entities.ServiceCall) float64 { return s.BudgetEstimate }),
	)

	switch c.SortField {
	case "":
		return out, nil
	case SortByCreatedAt:
		return SortBy(out, func(s entities.ServiceCall) int64 { return s.CreatedAt.UnixNano() }, c.Order), nil
	case SortByBudget:
		return SortBy(out, func(s entities.ServiceCall) float64 { return s.BudgetEstimate }, c.Order), nil
	}
	return nil, ErrUnknownSortField
}
