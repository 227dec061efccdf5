package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oldenfyre/inventory-console/internal/models"
	"github.com/oldenfyre/inventory-console/internal/view"
)

// GetOrdersHandler godoc
// @Summary List orders as table rows
// @Tags orders
// @Produce json
// @Param search query string false "Substring over code, customer name and phone"
// @Param status query string false "Order status or all"
// @Param sort query string false "priority to sort most urgent first"
// @Success 200 {object} Response
// @Router /console/orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := client.Orders(r.Context())
	if err != nil {
		writeRemoteError(w, err)
		return
	}

	q := r.URL.Query()
	filtered := view.FilterOrders(orders, q.Get("search"), q.Get("status"))
	if q.Get("sort") == "priority" {
		view.SortByOrderPriority(filtered)
	}
	rows := make([]OrderRow, len(filtered))
	for i, o := range filtered {
		rows[i] = orderRow(o)
	}
	writeJSON(w, http.StatusOK, ok(rows))
}

// GetOrderByCodeHandler godoc
// @Summary Get one order by code
// @Tags orders
// @Produce json
// @Param code path string true "Order code"
// @Success 200 {object} Response
// @Router /console/orders/{code} [get]
func GetOrderByCodeHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	order, err := client.OrderByCode(r.Context(), code)
	if err != nil {
		writeRemoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ok(orderDetail(order)))
}

// CreateOrderHandler godoc
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Success 201 {object} Response
// @Failure 400 {array} ValidationError
// @Router /console/orders [post]
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, fail("invalid input"))
		return
	}

	if validationErrors := validateOrder(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := client.CreateOrder(r.Context(), req)
	if err != nil {
		writeRemoteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ok(orderDetail(created)))
}

// UpdateOrderHandler godoc
// @Summary Update an order by code
// @Tags orders
// @Accept json
// @Produce json
// @Param code path string true "Order code"
// @Success 200 {object} Response
// @Router /console/orders/{code} [put]
func UpdateOrderHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req models.UpdateOrderRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, fail("invalid input"))
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		writeJSON(w, http.StatusBadRequest, fail("unknown order status"))
		return
	}

	updated, err := client.UpdateOrder(r.Context(), code, req)
	if err != nil {
		writeRemoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ok(orderDetail(updated)))
}

// DeleteOrderHandler godoc
// @Summary Soft-delete an order by code
// @Tags orders
// @Produce json
// @Param code path string true "Order code"
// @Success 200 {object} Response
// @Router /console/orders/{code} [delete]
func DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	deleted, err := client.DeleteOrder(r.Context(), code)
	if err != nil {
		writeRemoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okMsg("Order deleted", orderDetail(deleted)))
}

type StatusUpdateRequest struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateOrderStatusHandler godoc
// @Summary Change just the status of an order
// @Tags orders
// @Accept json
// @Produce json
// @Param code path string true "Order code"
// @Success 200 {object} Response
// @Router /console/orders/{code}/status [patch]
func UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req StatusUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, fail("invalid input"))
		return
	}
	if !req.Status.Valid() {
		writeJSON(w, http.StatusBadRequest, fail("unknown order status"))
		return
	}

	updated, err := client.UpdateOrderStatus(r.Context(), code, req.Status)
	if err != nil {
		writeRemoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ok(orderDetail(updated)))
}

type PreviewRequest struct {
	Items    []models.OrderItem `json:"items"`
	Discount float64            `json:"discount"`
}

type PreviewResult struct {
	Subtotal          float64 `json:"subtotal"`
	Discount          float64 `json:"discount"`
	Final             float64 `json:"final"`
	SubtotalFormatted string  `json:"subtotalFormatted"`
	FinalFormatted    string  `json:"finalFormatted"`
}

// PreviewOrderHandler computes totals for a form in progress. The math
// matches the backend's policy, so the preview equals what gets stored.
//
// @Summary Preview order totals
// @Tags orders
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Router /console/orders/preview [post]
func PreviewOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, fail("invalid input"))
		return
	}

	totals := view.OrderTotals(req.Items, req.Discount)
	writeJSON(w, http.StatusOK, ok(PreviewResult{
		Subtotal:          totals.Subtotal,
		Discount:          totals.Discount,
		Final:             totals.Final,
		SubtotalFormatted: view.FormatCurrency(totals.Subtotal),
		FinalFormatted:    view.FormatCurrency(totals.Final),
	}))
}
