package view

import (
	"sort"

	"github.com/oldenfyre/inventory-console/internal/models"
)

// unrankedLast puts statuses missing from a rank table after everything
// else.
const unrankedLast = 1 << 30

var stockRank = map[models.StockStatus]int{
	models.OutOfStock: 0,
	models.LowStock:   1,
	models.InStock:    2,
}

var orderRank = map[models.OrderStatus]int{
	models.OrderPending:   0,
	models.OrderConfirmed: 1,
	models.OrderShipped:   2,
	models.OrderDelivered: 3,
	models.OrderCancelled: 4,
}

func rankOf[S comparable](table map[S]int, s S) int {
	if r, ok := table[s]; ok {
		return r
	}
	return unrankedLast
}

// SortByStockPriority orders inventory rows most-urgent first. The sort
// is stable: equal ranks keep their original relative order, which
// carries recency.
func SortByStockPriority(items []InventoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return rankOf(stockRank, items[i].Status) < rankOf(stockRank, items[j].Status)
	})
}

// SortByOrderPriority orders orders by how much attention they need,
// pending first. Stable for equal ranks.
func SortByOrderPriority(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return rankOf(orderRank, orders[i].Status) < rankOf(orderRank, orders[j].Status)
	})
}
