package handlers

import (
	"strings"

	"github.com/oldenfyre/inventory-console/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(req models.CreateProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(req.Category) == "" {
		errs = append(errs, ValidationError{Field: "Category", Description: "Category is required"})
	}
	if req.Pricing.Sell <= 0 {
		errs = append(errs, ValidationError{Field: "Pricing.Sell", Description: "Sell price must be greater than zero"})
	}
	if req.Pricing.Buy < 0 {
		errs = append(errs, ValidationError{Field: "Pricing.Buy", Description: "Buy price cannot be negative"})
	}
	if d := req.Pricing.Discount; d != nil && (*d < 0 || *d > 100) {
		errs = append(errs, ValidationError{Field: "Pricing.Discount", Description: "Discount must be between 0 and 100"})
	}
	if req.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	return errs
}

func validateOrder(req models.CreateOrderRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Customer.Name) == "" {
		errs = append(errs, ValidationError{Field: "Customer.Name", Description: "Customer name is required"})
	}
	if strings.TrimSpace(req.Customer.Phone) == "" {
		errs = append(errs, ValidationError{Field: "Customer.Phone", Description: "Customer phone is required"})
	}
	if strings.TrimSpace(req.Customer.Address) == "" {
		errs = append(errs, ValidationError{Field: "Customer.Address", Description: "Customer address is required"})
	}
	if len(req.Items) == 0 {
		errs = append(errs, ValidationError{Field: "Items", Description: "At least one item is required"})
	}
	for _, it := range req.Items {
		if strings.TrimSpace(it.ProductCode) == "" {
			errs = append(errs, ValidationError{Field: "Items.ProductCode", Description: "Product code is required"})
		}
		if it.Quantity <= 0 {
			errs = append(errs, ValidationError{Field: "Items.Quantity", Description: "Item quantity must be greater than zero"})
		}
		if it.Price != nil && *it.Price < 0 {
			errs = append(errs, ValidationError{Field: "Items.Price", Description: "Item price cannot be negative"})
		}
	}
	if req.Totals != nil && req.Totals.Discount != nil && *req.Totals.Discount < 0 {
		errs = append(errs, ValidationError{Field: "Totals.Discount", Description: "Discount cannot be negative"})
	}
	if req.Status != nil && !req.Status.Valid() {
		errs = append(errs, ValidationError{Field: "Status", Description: "Unknown order status"})
	}
	return errs
}
