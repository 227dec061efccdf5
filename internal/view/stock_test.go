package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oldenfyre/inventory-console/internal/models"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		threshold int
		want      models.StockStatus
	}{
		{"zero is out of stock", 0, 5, models.OutOfStock},
		{"zero with big threshold", 0, 100, models.OutOfStock},
		{"below threshold is low", 4, 5, models.LowStock},
		{"one is low", 1, 5, models.LowStock},
		{"threshold boundary is in stock", 5, 5, models.InStock},
		{"above threshold is in stock", 50, 5, models.InStock},
		{"negative quantity treated as out", -3, 5, models.OutOfStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStock(tt.quantity, tt.threshold))
		})
	}
}

func TestClassifyStockTotality(t *testing.T) {
	// Every non-negative quantity lands in exactly one of the three
	// buckets for a handful of thresholds.
	valid := map[models.StockStatus]bool{
		models.OutOfStock: true,
		models.LowStock:   true,
		models.InStock:    true,
	}
	for _, threshold := range []int{1, 5, 10} {
		for q := 0; q <= 3*threshold; q++ {
			got := ClassifyStock(q, threshold)
			if !valid[got] {
				t.Fatalf("ClassifyStock(%d, %d) = %q, not a stock status", q, threshold, got)
			}
		}
	}
}

func TestStockPercentage(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		threshold int
		want      float64
	}{
		{"empty", 0, 5, 0},
		{"half", 5, 10, 50},
		{"full", 5, 5, 100},
		{"capped at 200", 50, 5, 200},
		{"exactly double", 10, 5, 200},
		{"zero threshold guarded", 7, 0, 0},
		{"negative threshold guarded", 7, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, StockPercentage(tt.current, tt.threshold), 1e-9)
		})
	}
}
