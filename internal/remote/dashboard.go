package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/oldenfyre/inventory-console/internal/models"
)

// DashboardStats fetches the pre-aggregated dashboard statistics.
func (c *Client) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var out models.DashboardStats
	err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &out)
	return out, err
}

// RecentOrders fetches the latest orders, capped at limit. The endpoint
// nests the list one level down.
func (c *Client) RecentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	var out struct {
		Orders []models.Order `json:"orders"`
	}
	path := fmt.Sprintf("/dashboard/recent-orders?limit=%d", limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// InventoryAlerts fetches the five alert buckets.
func (c *Client) InventoryAlerts(ctx context.Context) (models.InventoryAlerts, error) {
	var out models.InventoryAlerts
	err := c.do(ctx, http.MethodGet, "/dashboard/inventory-alerts", nil, &out)
	return out, err
}
