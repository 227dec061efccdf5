package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oldenfyre/inventory-console/internal/models"
)

// Products fetches the full catalog.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProductByCode fetches one product by its business code.
func (c *Client) ProductByCode(ctx context.Context, code string) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(code), nil, &out)
	return out, err
}

// CreateProduct adds a product to the catalog.
func (c *Client) CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, http.MethodPost, "/products", req, &out)
	return out, err
}

// UpdateProduct applies a sparse patch to the product with the given code.
func (c *Client) UpdateProduct(ctx context.Context, code string, req models.UpdateProductRequest) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(code), req, &out)
	return out, err
}

// DeleteProduct soft-deletes the product with the given code; the
// backend marks it deleted rather than removing it.
func (c *Client) DeleteProduct(ctx context.Context, code string) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(code), nil, &out)
	return out, err
}
