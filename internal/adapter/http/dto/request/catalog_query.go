package request

import (
	"strings"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/catalog"
)

// ProductQuery is the query string of GET /products.
type ProductQuery struct {
	Q         string   `form:"q"`
	Category  string   `form:"category"`
	VendorID  string   `form:"vendor_id"`
	Equipment string   `form:"equipment"`
	MinPrice  *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice  *float64 `form:"max_price" binding:"omitempty,gte=0"`
	InStock   bool     `form:"in_stock"`
	Sort      string   `form:"sort"`
	Order     string   `form:"order" binding:"omitempty,oneof=asc desc"`
}

// ToCriteria folds the query parameters into catalog criteria, one action per
// parameter that was sent.
func (q ProductQuery) ToCriteria() catalog.Criteria {
	actions := []catalog.Action{
		{Kind: catalog.ActionSetQuery, Value: q.Q},
		{Kind: catalog.ActionSetVendor, Value: q.VendorID},
		{Kind: catalog.ActionSetInStock, Flag: q.InStock},
	}
	if q.Category != "" {
		actions = append(actions, catalog.Action{Kind: catalog.ActionSetCategory, Value: q.Category})
	}
	if q.Equipment != "" {
		actions = append(actions, catalog.Action{Kind: catalog.ActionSetEquipment, Value: q.Equipment})
	}
	if r, ok := priceRange(q.MinPrice, q.MaxPrice); ok {
		actions = append(actions, catalog.Action{Kind: catalog.ActionSetPriceRange, Range: r})
	}
	if q.Sort != "" {
		actions = append(actions, catalog.Action{Kind: catalog.ActionSetSort, Value: q.Sort, Order: sortOrder(q.Order)})
	}
	return catalog.ReduceAll(catalog.DefaultCriteria(), actions...)
}

// ServiceCallQuery is the query string of GET /service-calls.
type ServiceCallQuery struct {
	Q         string   `form:"q"`
	Status    string   `form:"status"`
	Category  string   `form:"category"`
	Equipment string   `form:"equipment"`
	City      string   `form:"city"`
	MinBudget *float64 `form:"min_budget" binding:"omitempty,gte=0"`
	MaxBudget *float64 `form:"max_budget" binding:"omitempty,gte=0"`
	Sort      string   `form:"sort"`
	Order     string   `form:"order" binding:"omitempty,oneof=asc desc"`
}

func (q ServiceCallQuery) ToCriteria() catalog.Criteria {
	actions := []catalog.Action{
		{Kind: catalog.ActionSetQuery, Value: q.Q},
		{Kind: catalog.ActionSetCity, Value: q.City},
	}
	if q.Status != "" {
		actions = append(actions, catalog.Action{Kind: catalog.ActionSetStatus, Value: q.Status})
	}
	if q.Category != "" {
		actions = append(actions, catalog.Action{Kind: catalog.ActionSetCategory, Value: q.Category})
	}
	if q.Equipment != "" {
		actions = append(actions, catalog.Action{Kind: catalog.ActionSetEquipment, Value: q.Equipment})
	}
	if r, ok := priceRange(q.MinBudget, q.MaxBudget); ok {
		actions = append(actions, catalog.Action{Kind: catalog.ActionSetPriceRange, Range: r})
	}
	if q.Sort != "" {
		actions = append(actions, catalog.Action{Kind: catalog.ActionSetSort, Value: q.Sort, Order: sortOrder(q.Order)})
	}
	return catalog.ReduceAll(catalog.DefaultCriteria(), actions...)
}

func priceRange(min, max *float64) (catalog.Range, bool) {
	var r catalog.Range
	if min != nil {
		r.Min, r.HasMin = *min, true
	}
	if max != nil {
		r.Max, r.HasMax = *max, true
	}
	return r, r.Active()
}

func sortOrder(s string) catalog.SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(catalog.SortDesc)) {
		return catalog.SortDesc
	}
	return catalog.SortAsc
}
