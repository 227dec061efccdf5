package view

import "github.com/oldenfyre/inventory-console/internal/models"

// InventoryItem is one row of the inventory list, derived from the
// alert buckets the backend returns.
type InventoryItem struct {
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Category  string             `json:"category"`
	Quantity  int                `json:"quantity"`
	Threshold int                `json:"threshold"`
	Status    models.StockStatus `json:"status"`
}

// FlattenAlerts turns the stock-related alert buckets into inventory
// rows classified against threshold. Buckets that flag catalog state
// rather than stock levels (highDiscount, discontinued) are not
// inventory rows and are skipped; soldOut products carry their real
// quantity and classify like any other.
func FlattenAlerts(alerts models.InventoryAlerts, threshold int) []InventoryItem {
	var items []InventoryItem
	for _, bucket := range []models.AlertBucket{alerts.OutOfStock, alerts.LowStock, alerts.SoldOut} {
		for _, p := range bucket.Products {
			items = append(items, InventoryItem{
				Code:      p.Code,
				Name:      p.Name,
				Category:  p.Category,
				Quantity:  p.Quantity,
				Threshold: threshold,
				Status:    ClassifyStock(p.Quantity, threshold),
			})
		}
	}
	return items
}
