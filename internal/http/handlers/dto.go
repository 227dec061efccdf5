package handlers

import (
	"github.com/oldenfyre/inventory-console/internal/models"
	"github.com/oldenfyre/inventory-console/internal/view"
)

// ProductRow is one line of the products table, with every derived
// label precomputed so the UI renders it verbatim.
type ProductRow struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Series      string `json:"series,omitempty"`
	Price       string `json:"price"`
	BuyPrice    string `json:"buyPrice"`
	Discount    string `json:"discount,omitempty"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	StatusColor string `json:"statusColor"`
	Stock       string `json:"stock"`
	StockLabel  string `json:"stockLabel"`
	StockColor  string `json:"stockColor"`
	UpdatedAt   string `json:"updatedAt"`
}

func productRow(p models.Product) ProductRow {
	stock := view.ClassifyStock(p.Quantity, lowStockThreshold)
	row := ProductRow{
		Code:        p.Code,
		Name:        p.Name,
		Category:    p.Category,
		Series:      p.Series,
		Price:       view.FormatCurrency(p.Pricing.Sell),
		BuyPrice:    view.FormatCurrency(p.Pricing.Buy),
		Quantity:    p.Quantity,
		Status:      string(p.Status),
		StatusLabel: p.Status.Label(),
		StatusColor: p.Status.Color(),
		Stock:       string(stock),
		StockLabel:  stock.Label(),
		StockColor:  stock.Color(),
		UpdatedAt:   view.FormatDate(p.UpdatedAt),
	}
	if p.Pricing.Discount != nil && *p.Pricing.Discount > 0 {
		row.Discount = view.FormatPercent(*p.Pricing.Discount)
	}
	return row
}

// ProductDetail is the single-product view.
type ProductDetail struct {
	ProductRow
	Description  string   `json:"description,omitempty"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	Images       []string `json:"images,omitempty"`
	StockPercent float64  `json:"stockPercent"`
	CreatedAt    string   `json:"createdAt"`
}

func productDetail(p models.Product) ProductDetail {
	d := ProductDetail{
		ProductRow:   productRow(p),
		Description:  p.Description,
		StockPercent: view.StockPercentage(p.Quantity, lowStockThreshold),
		CreatedAt:    view.FormatDate(p.CreatedAt),
	}
	if p.Media != nil {
		d.Thumbnail = p.Media.Thumbnail
		d.Images = p.Media.Images
	}
	return d
}

// OrderRow is one line of the orders table.
type OrderRow struct {
	Code        string `json:"code"`
	Customer    string `json:"customer"`
	Phone       string `json:"phone"`
	ItemCount   int    `json:"itemCount"`
	Total       string `json:"total"`
	Discount    string `json:"discount,omitempty"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	StatusColor string `json:"statusColor"`
	CreatedAt   string `json:"createdAt"`
}

func orderRow(o models.Order) OrderRow {
	row := OrderRow{
		Code:        o.Code,
		Customer:    o.Customer.Name,
		Phone:       o.Customer.Phone,
		ItemCount:   len(o.Items),
		Total:       view.FormatCurrency(o.Totals.Final),
		Status:      string(o.Status),
		StatusLabel: o.Status.Label(),
		StatusColor: o.Status.Color(),
		CreatedAt:   view.FormatDate(o.CreatedAt),
	}
	if o.Totals.Discount > 0 {
		row.Discount = view.FormatCurrency(o.Totals.Discount)
	}
	return row
}

// OrderLine is one item of the single-order view, with its line total.
type OrderLine struct {
	ProductCode string `json:"productCode"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Total       string `json:"total"`
}

// OrderDetail is the single-order view.
type OrderDetail struct {
	OrderRow
	AltPhone string      `json:"altPhone,omitempty"`
	Address  string      `json:"address"`
	Items    []OrderLine `json:"items"`
	Subtotal string      `json:"subtotal"`
	Final    string      `json:"final"`
}

func orderDetail(o models.Order) OrderDetail {
	lines := make([]OrderLine, len(o.Items))
	for i, it := range o.Items {
		lines[i] = OrderLine{
			ProductCode: it.ProductCode,
			Quantity:    it.Quantity,
			Price:       view.FormatCurrency(it.Price),
			Total:       view.FormatCurrency(view.LineTotal(it.Price, it.Quantity)),
		}
	}
	return OrderDetail{
		OrderRow: orderRow(o),
		AltPhone: o.Customer.AltPhone,
		Address:  o.Customer.Address,
		Items:    lines,
		Subtotal: view.FormatCurrency(o.Totals.Subtotal),
		Final:    view.FormatCurrency(o.Totals.Final),
	}
}

// InventoryRow is one line of the inventory list.
type InventoryRow struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	Threshold    int     `json:"threshold"`
	Status       string  `json:"status"`
	StatusLabel  string  `json:"statusLabel"`
	StatusColor  string  `json:"statusColor"`
	StockPercent float64 `json:"stockPercent"`
}

func inventoryRow(it view.InventoryItem) InventoryRow {
	return InventoryRow{
		Code:         it.Code,
		Name:         it.Name,
		Category:     it.Category,
		Quantity:     it.Quantity,
		Threshold:    it.Threshold,
		Status:       string(it.Status),
		StatusLabel:  it.Status.Label(),
		StatusColor:  it.Status.Color(),
		StockPercent: view.StockPercentage(it.Quantity, it.Threshold),
	}
}
