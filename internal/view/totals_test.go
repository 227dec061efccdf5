package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oldenfyre/inventory-console/internal/models"
)

func TestOrderTotals(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.OrderItem
		discount float64
		want     models.Totals
	}{
		{
			name:     "single line with discount",
			items:    []models.OrderItem{{ProductCode: "P-1", Quantity: 3, Price: 100}},
			discount: 50,
			want:     models.Totals{Subtotal: 300, Discount: 50, Final: 250},
		},
		{
			name: "multiple lines",
			items: []models.OrderItem{
				{ProductCode: "P-1", Quantity: 2, Price: 10},
				{ProductCode: "P-2", Quantity: 1, Price: 5.5},
			},
			discount: 0,
			want:     models.Totals{Subtotal: 25.5, Discount: 0, Final: 25.5},
		},
		{
			name:     "discount exceeding subtotal clamps final at zero",
			items:    []models.OrderItem{{ProductCode: "P-1", Quantity: 1, Price: 10}},
			discount: 50,
			want:     models.Totals{Subtotal: 10, Discount: 50, Final: 0},
		},
		{
			name:     "no items",
			items:    nil,
			discount: 0,
			want:     models.Totals{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderTotals(tt.items, tt.discount))
		})
	}
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 300.0, LineTotal(100, 3))
	assert.Equal(t, 0.0, LineTotal(100, 0))
	// Out-of-range input produces a well-defined result, never a panic.
	assert.Equal(t, -50.0, LineTotal(-10, 5))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "৳0.00"},
		{15, "৳15.00"},
		{1500, "৳1,500.00"},
		{1234567.89, "৳1,234,567.89"},
		{-42.5, "-৳42.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.amount))
	}
	// Same input, same output.
	assert.Equal(t, FormatCurrency(99.99), FormatCurrency(99.99))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 5, 2025", FormatDate("2025-03-05T10:30:00Z"))
	assert.Equal(t, "Dec 31, 2024", FormatDate("2024-12-31T23:59:59+06:00"))
	assert.Equal(t, "not a date", FormatDate("not a date"))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.5%", FormatPercent(12.5))
	assert.Equal(t, "0.0%", FormatPercent(0))
}
