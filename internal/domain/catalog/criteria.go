package catalog

import "strings"

// Criteria is the immutable selection of filters applied to a collection.
// It only changes through Reduce.
type Criteria struct {
	Query     string    `json:"query"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	Equipment string    `json:"equipment"`
	City      string    `json:"city"`
	VendorID  string    `json:"vendor_id"`
	Price     Range     `json:"price"`
	InStock   bool      `json:"in_stock"`
	SortField string    `json:"sort_field"`
	Order     SortOrder `json:"order"`
}

// DefaultCriteria selects everything in insertion order.
func DefaultCriteria() Criteria {
	return Criteria{Category: All, Status: All, Equipment: All, Order: SortAsc}
}

type ActionKind string

const (
	ActionSetQuery      ActionKind = "set_query"
	ActionSetCategory   ActionKind = "set_category"
	ActionSetStatus     ActionKind = "set_status"
	ActionSetEquipment  ActionKind = "set_equipment"
	ActionSetCity       ActionKind = "set_city"
	ActionSetVendor     ActionKind = "set_vendor"
	ActionSetPriceRange ActionKind = "set_price_range"
	ActionSetInStock    ActionKind = "set_in_stock"
	ActionSetSort       ActionKind = "set_sort"
	ActionReset         ActionKind = "reset"
)

// Action is a single change to Criteria.
type Action struct {
	Kind  ActionKind
	Value string
	Range Range
	Flag  bool
	Order SortOrder
}

// Reduce returns the criteria that results from applying a to c. c is not modified.
func Reduce(c Criteria, a Action) Criteria {
	v := strings.TrimSpace(a.Value)
	switch a.Kind {
	case ActionSetQuery:
		c.Query = v
	case ActionSetCategory:
		c.Category = v
	case ActionSetStatus:
		c.Status = v
	case ActionSetEquipment:
		c.Equipment = v
	case ActionSetCity:
		c.City = v
	case ActionSetVendor:
		c.VendorID = v
	case ActionSetPriceRange:
		c.Price = a.Range
	case ActionSetInStock:
		c.InStock = a.Flag
	case ActionSetSort:
		c.SortField = v
		c.Order = SortAsc
		if a.Order == SortDesc {
			c.Order = SortDesc
		}
	case ActionReset:
		return DefaultCriteria()
	}
	return c
}

// ReduceAll folds actions over c in order.
func ReduceAll(c Criteria, actions ...Action) Criteria {
	for _, a := range actions {
		c = Reduce(c, a)
	}
	return c
}
