package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice float64
		discount  float64
		expect    float64
	}{
		{"basic multiplication", 3, 2.5, 0, 7.5},
		{"discount subtracted", 2, 10, 5, 15},
		{"discount above gross clamps to zero", 1, 10, 20, 0},
		{"zero quantity", 0, 100, 0, 0},
		{"zero price", 5, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, LineTotal(tt.quantity, tt.unitPrice, tt.discount))
		})
	}
}

func TestLineTotal_NeverNegative(t *testing.T) {
	for q := 0; q <= 5; q++ {
		for _, p := range []float64{0, 0.5, 9.9, 45.9, 850} {
			for _, d := range []float64{0, 1, 50, 1000} {
				got := LineTotal(q, p, d)
				assert.Equal(t, math.Max(0, float64(q)*p-d), got)
				assert.GreaterOrEqual(t, got, 0.0)
			}
		}
	}
}

func TestSuggestedPrice(t *testing.T) {
	tests := []struct {
		name   string
		cost   float64
		markup float64
		expect float64
	}{
		{"zero markup keeps cost", 123.45, 0, 123.45},
		{"fifty percent", 200, 50, 300},
		{"twenty five percent", 80, 25, 100},
		{"negative markup is not clamped", 100, -50, 50},
		{"markup below -100 goes negative", 100, -150, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, SuggestedPrice(tt.cost, tt.markup))
		})
	}

	for _, c := range []float64{0, 10, 99.9, 1500} {
		for _, m := range []float64{-20, 0, 15, 100} {
			assert.Equal(t, c*(1+m/100), SuggestedPrice(c, m))
		}
	}
}

func TestItemCost(t *testing.T) {
	assert.Equal(t, 150.0, ItemCost(100, 30, 15, 5))
	assert.Equal(t, 130.0, ItemCost(100, 30))
}

func TestMargin(t *testing.T) {
	value, percent := Margin(200, 150)
	assert.Equal(t, 50.0, value)
	assert.Equal(t, 25.0, percent)

	value, percent = Margin(0, 10)
	assert.Equal(t, -10.0, value)
	assert.Zero(t, percent)
}

func TestFloorPolicy(t *testing.T) {
	assert.Equal(t, 0.0, FloorAtZero.Apply(-3))
	assert.Equal(t, -3.0, NoFloor.Apply(-3))
	assert.Equal(t, 4.0, FloorAtZero.Apply(4))
}
