package handlers

import (
	"net/http"

	"github.com/oldenfyre/inventory-console/internal/models"
	"github.com/oldenfyre/inventory-console/internal/view"
)

// InventoryResult carries the derived inventory rows plus the raw alert
// buckets the backend aggregated.
type InventoryResult struct {
	Items  []InventoryRow         `json:"items"`
	Alerts models.InventoryAlerts `json:"alerts"`
}

// GetInventoryHandler godoc
// @Summary Inventory list derived from alert buckets
// @Tags inventory
// @Produce json
// @Param search query string false "Substring over name, code and category"
// @Param status query string false "Stock status or all"
// @Success 200 {object} Response
// @Router /console/inventory [get]
func GetInventoryHandler(w http.ResponseWriter, r *http.Request) {
	alerts, err := client.InventoryAlerts(r.Context())
	if err != nil {
		writeRemoteError(w, err)
		return
	}

	q := r.URL.Query()
	items := view.FlattenAlerts(alerts, lowStockThreshold)
	items = view.FilterInventory(items, q.Get("search"), q.Get("status"))
	view.SortByStockPriority(items)

	rows := make([]InventoryRow, len(items))
	for i, it := range items {
		rows[i] = inventoryRow(it)
	}
	writeJSON(w, http.StatusOK, ok(InventoryResult{Items: rows, Alerts: alerts}))
}
