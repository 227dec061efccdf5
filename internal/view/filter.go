package view

import (
	"strings"

	"github.com/oldenfyre/inventory-console/internal/models"
)

// StatusAll is the wildcard value of the status filter.
const StatusAll = "all"

// matchesSearch reports whether any field contains term,
// case-insensitively. An empty term matches everything.
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func matchesStatus(filter, status string) bool {
	return filter == StatusAll || filter == "" || status == filter
}

// MatchProduct reports whether a product passes both the text filter
// (over name, code and category) and the status filter.
func MatchProduct(p models.Product, search, status string) bool {
	return matchesSearch(search, p.Name, p.Code, p.Category) &&
		matchesStatus(status, string(p.Status))
}

// MatchOrder reports whether an order passes both the text filter (over
// code, customer name and customer phone) and the status filter.
func MatchOrder(o models.Order, search, status string) bool {
	return matchesSearch(search, o.Code, o.Customer.Name, o.Customer.Phone) &&
		matchesStatus(status, string(o.Status))
}

// FilterProducts returns the products matching both filters, preserving
// input order.
func FilterProducts(products []models.Product, search, status string) []models.Product {
	filtered := []models.Product{}
	for _, p := range products {
		if MatchProduct(p, search, status) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterOrders returns the orders matching both filters, preserving
// input order.
func FilterOrders(orders []models.Order, search, status string) []models.Order {
	filtered := []models.Order{}
	for _, o := range orders {
		if MatchOrder(o, search, status) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// FilterInventory returns the inventory items matching both filters,
// preserving input order. The status filter matches the derived stock
// status.
func FilterInventory(items []InventoryItem, search, status string) []InventoryItem {
	filtered := []InventoryItem{}
	for _, it := range items {
		if matchesSearch(search, it.Name, it.Code, it.Category) &&
			matchesStatus(status, string(it.Status)) {
			filtered = append(filtered, it)
		}
	}
	return filtered
}
