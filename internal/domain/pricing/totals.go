package pricing

import (
	"errors"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

var (
	ErrOutOfStock          = errors.New("product out of stock")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInvalidCartQuantity = errors.New("invalid cart quantity")
)

// CalculateBudget re-derives every item total and fills the breakdown.
// The input budget is not modified.
func CalculateBudget(b entities.Budget, cfg entities.ExpensesConfig) entities.Budget {
	items := make([]entities.BudgetItem, len(b.Items))
	var parts float64
	for i, it := range b.Items {
		it.Total = LineTotal(it.Quantity, it.UnitPrice, 0)
		parts += it.Total
		items[i] = it
	}
	b.Items = items

	exp := Aggregate(cfg, b.Trip, b.Extras)

	bd := entities.BudgetBreakdown{
		VisitFee:        b.VisitFee,
		Labor:           b.LaborHours * b.LaborRate,
		Parts:           parts,
		Travel:          exp.Travel,
		Lodging:         exp.Lodging,
		Meals:           exp.Meals,
		Extras:          exp.ExtrasTotal,
		DiscountPercent: b.DiscountPercent,
	}
	bd.Subtotal = bd.VisitFee + bd.Labor + bd.Parts + bd.Travel + bd.Lodging + bd.Meals + bd.Extras
	bd.DiscountValue, bd.Total = ApplyDiscount(bd.Subtotal, b.DiscountPercent)
	b.Breakdown = bd
	return b
}

// ApplyDiscount returns the discount value and the discounted total. Not clamped.
func ApplyDiscount(subtotal, discountPercent float64) (discountValue, total float64) {
	discountValue = subtotal * (discountPercent / 100)
	return discountValue, NoFloor.Apply(subtotal - discountValue)
}

// CalculateServiceOrder re-derives item totals (floored at zero) and the order totals.
func CalculateServiceOrder(o entities.ServiceOrder) entities.ServiceOrder {
	items := make([]entities.ServiceOrderItem, len(o.Items))
	var subtotal float64
	for i, it := range o.Items {
		it.Total = LineTotal(it.Quantity, it.UnitPrice, it.Discount)
		subtotal += it.Total
		items[i] = it
	}
	o.Items = items
	o.Subtotal = subtotal
	o.DiscountValue, o.Total = ApplyDiscount(subtotal, o.DiscountPercent)
	return o
}

// CartTotal prices a cart. Out-of-stock products and quantities above the
// available stock are rejected.
func CartTotal(lines []entities.CartLine) ([]entities.CartLine, float64, error) {
	out := make([]entities.CartLine, len(lines))
	var total float64
	for i, l := range lines {
		if l.Quantity < 1 {
			return nil, 0, ErrInvalidCartQuantity
		}
		if !l.Product.InStock() {
			return nil, 0, ErrOutOfStock
		}
		if l.Quantity > l.Product.StockQuantity {
			return nil, 0, ErrInsufficientStock
		}
		l.Total = LineTotal(l.Quantity, l.Product.Price, 0)
		total += l.Total
		out[i] = l
	}
	return out, total, nil
}
