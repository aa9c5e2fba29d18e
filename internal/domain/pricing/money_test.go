package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 2.35, RoundCents(2.345))
	assert.Equal(t, -2.35, RoundCents(-2.345))
	assert.Equal(t, 10.0, RoundCents(9.999))
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in     float64
		expect string
	}{
		{0, "R$ 0,00"},
		{45.9, "R$ 45,90"},
		{850, "R$ 850,00"},
		{1234.56, "R$ 1.234,56"},
		{1234567.891, "R$ 1.234.567,89"},
		{-10.5, "-R$ 10,50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expect, FormatBRL(tt.in))
	}
}
