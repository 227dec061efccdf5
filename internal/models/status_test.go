package models

import "testing"

func TestStatusTablesAreExhaustive(t *testing.T) {
	for _, s := range []ProductStatus{ProductActive, ProductInactive, ProductDiscontinued, ProductSoldOut, ProductDeleted} {
		if !s.Valid() {
			t.Errorf("product status %q missing from the label table", s)
		}
		if s.Color() == "" || s.Label() == "" {
			t.Errorf("product status %q has no color or label", s)
		}
	}
	for _, s := range []OrderStatus{OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled} {
		if !s.Valid() {
			t.Errorf("order status %q missing from the label table", s)
		}
		if s.Color() == "" || s.Label() == "" {
			t.Errorf("order status %q has no color or label", s)
		}
	}
	for _, s := range []StockStatus{InStock, LowStock, OutOfStock} {
		if s.Color() == "" || s.Label() == "" {
			t.Errorf("stock status %q has no color or label", s)
		}
	}
}

func TestUnknownStatusFallsBack(t *testing.T) {
	if ProductStatus("levitating").Valid() {
		t.Error("unknown product status must not validate")
	}
	if got := ProductStatus("levitating").Color(); got != "gray" {
		t.Errorf("expected gray fallback, got %q", got)
	}
	if got := OrderStatus("teleported").Label(); got != "teleported" {
		t.Errorf("expected raw value fallback, got %q", got)
	}
}
