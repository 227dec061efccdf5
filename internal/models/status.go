package models

// ProductStatus is the lifecycle state of a catalog product.
type ProductStatus string

const (
	ProductActive       ProductStatus = "active"
	ProductInactive     ProductStatus = "inactive"
	ProductDiscontinued ProductStatus = "discontinued"
	ProductSoldOut      ProductStatus = "sold_out"
	ProductDeleted      ProductStatus = "deleted"
)

// OrderStatus is the fulfilment state of an order. The set is flat; the
// backend owns whatever transition rules exist.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// StockStatus is derived from quantity and a threshold; it is never stored.
type StockStatus string

const (
	InStock    StockStatus = "in_stock"
	LowStock   StockStatus = "low_stock"
	OutOfStock StockStatus = "out_of_stock"
)

// AlertSeverity grades an inventory alert.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityCritical AlertSeverity = "critical"
)

// Badge colors the UI attaches to each status. Unknown values fall back to
// the gray badge rather than failing.
const badgeGray = "gray"

var productStatusColors = map[ProductStatus]string{
	ProductActive:       "green",
	ProductInactive:     "gray",
	ProductDiscontinued: "red",
	ProductSoldOut:      "yellow",
	ProductDeleted:      "gray",
}

var productStatusLabels = map[ProductStatus]string{
	ProductActive:       "Active",
	ProductInactive:     "Inactive",
	ProductDiscontinued: "Discontinued",
	ProductSoldOut:      "Sold Out",
	ProductDeleted:      "Deleted",
}

var orderStatusColors = map[OrderStatus]string{
	OrderPending:   "yellow",
	OrderConfirmed: "blue",
	OrderShipped:   "purple",
	OrderDelivered: "green",
	OrderCancelled: "red",
}

var orderStatusLabels = map[OrderStatus]string{
	OrderPending:   "Pending",
	OrderConfirmed: "Confirmed",
	OrderShipped:   "Shipped",
	OrderDelivered: "Delivered",
	OrderCancelled: "Cancelled",
}

var stockStatusColors = map[StockStatus]string{
	InStock:    "green",
	LowStock:   "yellow",
	OutOfStock: "red",
}

var stockStatusLabels = map[StockStatus]string{
	InStock:    "In Stock",
	LowStock:   "Low Stock",
	OutOfStock: "Out of Stock",
}

var severityColors = map[AlertSeverity]string{
	SeverityLow:      "yellow",
	SeverityCritical: "red",
}

func (s ProductStatus) Valid() bool {
	_, ok := productStatusLabels[s]
	return ok
}

func (s ProductStatus) Label() string {
	if l, ok := productStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s ProductStatus) Color() string {
	if c, ok := productStatusColors[s]; ok {
		return c
	}
	return badgeGray
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s OrderStatus) Color() string {
	if c, ok := orderStatusColors[s]; ok {
		return c
	}
	return badgeGray
}

func (s StockStatus) Label() string {
	if l, ok := stockStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s StockStatus) Color() string {
	if c, ok := stockStatusColors[s]; ok {
		return c
	}
	return badgeGray
}

func (s AlertSeverity) Color() string {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return badgeGray
}
