// Package pricing holds the pure budget, order and cart calculations.
//
// Every function is synchronous and side-effect free; callers pass plain values
// and get plain values back.
package pricing

// FloorPolicy states what happens to a computed amount that falls below zero.
//
// Line totals use FloorAtZero: a discount never turns a line into a refund.
// Suggested prices and budget totals use NoFloor: a negative markup or a
// discount above 100% is passed through unchanged.
type FloorPolicy int

const (
	NoFloor FloorPolicy = iota
	FloorAtZero
)

// Apply enforces the policy on v.
func (p FloorPolicy) Apply(v float64) float64 {
	if p == FloorAtZero && v < 0 {
		return 0
	}
	return v
}

// LineTotal is quantity*unitPrice - discount, floored at zero.
func LineTotal(quantity int, unitPrice, discount float64) float64 {
	return FloorAtZero.Apply(float64(quantity)*unitPrice - discount)
}

// SuggestedPrice applies a markup percentage over cost. Not clamped.
func SuggestedPrice(cost, markupPercent float64) float64 {
	return NoFloor.Apply(cost * (1 + markupPercent/100))
}

// ItemCost aggregates the purchase price, shipping and any additional costs.
func ItemCost(purchase, shipping float64, additional ...float64) float64 {
	total := purchase + shipping
	for _, a := range additional {
		total += a
	}
	return total
}

// Margin returns price minus cost and the margin as a percentage of price.
func Margin(price, cost float64) (value, percent float64) {
	value = price - cost
	if price != 0 {
		percent = value / price * 100
	}
	return value, percent
}
