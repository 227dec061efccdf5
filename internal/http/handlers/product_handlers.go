package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oldenfyre/inventory-console/internal/models"
	"github.com/oldenfyre/inventory-console/internal/view"
)

// GetProductsHandler godoc
// @Summary List products as table rows
// @Tags products
// @Produce json
// @Param search query string false "Substring over name, code and category"
// @Param status query string false "Product status or all"
// @Success 200 {object} Response
// @Router /console/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := client.Products(r.Context())
	if err != nil {
		writeRemoteError(w, err)
		return
	}

	q := r.URL.Query()
	filtered := view.FilterProducts(products, q.Get("search"), q.Get("status"))
	rows := make([]ProductRow, len(filtered))
	for i, p := range filtered {
		rows[i] = productRow(p)
	}
	writeJSON(w, http.StatusOK, ok(rows))
}

// GetProductByCodeHandler godoc
// @Summary Get one product by code
// @Tags products
// @Produce json
// @Param code path string true "Product code"
// @Success 200 {object} Response
// @Router /console/products/{code} [get]
func GetProductByCodeHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	product, err := client.ProductByCode(r.Context(), code)
	if err != nil {
		writeRemoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ok(productDetail(product)))
}

// CreateProductHandler godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Success 201 {object} Response
// @Failure 400 {array} ValidationError
// @Router /console/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, fail("invalid input"))
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := client.CreateProduct(r.Context(), req)
	if err != nil {
		writeRemoteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ok(productDetail(created)))
}

// UpdateProductHandler godoc
// @Summary Update a product by code
// @Tags products
// @Accept json
// @Produce json
// @Param code path string true "Product code"
// @Success 200 {object} Response
// @Router /console/products/{code} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req models.UpdateProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, fail("invalid input"))
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		writeJSON(w, http.StatusBadRequest, fail("unknown product status"))
		return
	}

	updated, err := client.UpdateProduct(r.Context(), code, req)
	if err != nil {
		writeRemoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ok(productDetail(updated)))
}

// DeleteProductHandler godoc
// @Summary Soft-delete a product by code
// @Tags products
// @Produce json
// @Param code path string true "Product code"
// @Success 200 {object} Response
// @Router /console/products/{code} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	deleted, err := client.DeleteProduct(r.Context(), code)
	if err != nil {
		writeRemoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okMsg("Product deleted", productDetail(deleted)))
}
