package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oldenfyre/inventory-console/internal/models"
)

// Orders fetches all orders.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrderByCode fetches one order by its code.
func (c *Client) OrderByCode(ctx context.Context, code string) (models.Order, error) {
	var out models.Order
	err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(code), nil, &out)
	return out, err
}

// CreateOrder places a new order.
func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	var out models.Order
	err := c.do(ctx, http.MethodPost, "/orders", req, &out)
	return out, err
}

// UpdateOrder applies a sparse patch to the order with the given code.
func (c *Client) UpdateOrder(ctx context.Context, code string, req models.UpdateOrderRequest) (models.Order, error) {
	var out models.Order
	err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(code), req, &out)
	return out, err
}

// DeleteOrder soft-deletes the order with the given code.
func (c *Client) DeleteOrder(ctx context.Context, code string) (models.Order, error) {
	var out models.Order
	err := c.do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(code), nil, &out)
	return out, err
}

// UpdateOrderStatus patches just the status of an order.
func (c *Client) UpdateOrderStatus(ctx context.Context, code string, status models.OrderStatus) (models.Order, error) {
	var out models.Order
	body := struct {
		Status models.OrderStatus `json:"status"`
	}{Status: status}
	err := c.do(ctx, http.MethodPatch, "/orders/"+url.PathEscape(code)+"/status", body, &out)
	return out, err
}
