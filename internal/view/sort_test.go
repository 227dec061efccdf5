package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oldenfyre/inventory-console/internal/models"
)

func TestSortByStockPriorityStable(t *testing.T) {
	// Two out-of-stock items must keep their relative order; input
	// order carries recency.
	items := []InventoryItem{
		{Code: "A", Status: models.OutOfStock},
		{Code: "B", Status: models.InStock},
		{Code: "C", Status: models.OutOfStock},
		{Code: "D", Status: models.LowStock},
	}
	SortByStockPriority(items)

	codes := make([]string, len(items))
	for i, it := range items {
		codes[i] = it.Code
	}
	assert.Equal(t, []string{"A", "C", "D", "B"}, codes)
}

func TestSortByStockPriorityUnknownLast(t *testing.T) {
	items := []InventoryItem{
		{Code: "X", Status: models.StockStatus("mystery")},
		{Code: "Y", Status: models.InStock},
		{Code: "Z", Status: models.OutOfStock},
	}
	SortByStockPriority(items)

	assert.Equal(t, "Z", items[0].Code)
	assert.Equal(t, "Y", items[1].Code)
	assert.Equal(t, "X", items[2].Code, "unmapped statuses sort last")
}

func TestSortByOrderPriority(t *testing.T) {
	orders := []models.Order{
		{Code: "O1", Status: models.OrderDelivered},
		{Code: "O2", Status: models.OrderPending},
		{Code: "O3", Status: models.OrderShipped},
		{Code: "O4", Status: models.OrderPending},
	}
	SortByOrderPriority(orders)

	codes := make([]string, len(orders))
	for i, o := range orders {
		codes[i] = o.Code
	}
	assert.Equal(t, []string{"O2", "O4", "O3", "O1"}, codes)
}
