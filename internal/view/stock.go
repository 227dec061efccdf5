package view

import "github.com/oldenfyre/inventory-console/internal/models"

// DefaultLowStockThreshold is used when a product has no threshold of
// its own.
const DefaultLowStockThreshold = 5

// ClassifyStock maps a quantity to a stock status. Total over all
// inputs: zero is out of stock, anything below the threshold is low,
// the threshold itself counts as in stock.
func ClassifyStock(quantity, threshold int) models.StockStatus {
	if quantity <= 0 {
		return models.OutOfStock
	}
	if quantity < threshold {
		return models.LowStock
	}
	return models.InStock
}

// StockPercentage is the fill value for the stock progress bar, capped
// at 200 to bound visual overflow. A non-positive threshold yields 0
// rather than dividing by zero.
func StockPercentage(current, threshold int) float64 {
	if threshold <= 0 {
		return 0
	}
	pct := float64(current) / float64(threshold) * 100
	if pct > 200 {
		return 200
	}
	return pct
}
