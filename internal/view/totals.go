package view

import "github.com/oldenfyre/inventory-console/internal/models"

// LineTotal is the price of one order line.
func LineTotal(price float64, quantity int) float64 {
	return price * float64(quantity)
}

// Subtotal sums the line totals of an order.
func Subtotal(items []models.OrderItem) float64 {
	var sum float64
	for _, it := range items {
		sum += LineTotal(it.Price, it.Quantity)
	}
	return sum
}

// FinalTotal applies the discount to a subtotal, clamped at zero. This
// must match the backend's policy exactly so the live form preview
// agrees with the stored totals.
func FinalTotal(subtotal, discount float64) float64 {
	final := subtotal - discount
	if final < 0 {
		return 0
	}
	return final
}

// OrderTotals computes the full preview for a set of lines.
func OrderTotals(items []models.OrderItem, discount float64) models.Totals {
	subtotal := Subtotal(items)
	return models.Totals{
		Subtotal: subtotal,
		Discount: discount,
		Final:    FinalTotal(subtotal, discount),
	}
}
