package models

// Customer is the ordering party's contact details.
type Customer struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	AltPhone string `json:"alt_phone,omitempty"`
	Address  string `json:"address"`
}

// OrderItem is one line of an order. Price is the unit price captured at
// order time, not the product's current price.
type OrderItem struct {
	ProductCode string  `json:"productCode"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Totals is computed by the backend; Final = Subtotal - Discount,
// clamped at zero.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount,omitempty"`
	Final    float64 `json:"final"`
}

// Order as returned by the backend.
type Order struct {
	ID        string      `json:"_id"`
	Code      string      `json:"code"`
	Customer  Customer    `json:"customer"`
	Items     []OrderItem `json:"items"`
	Totals    Totals      `json:"totals"`
	Status    OrderStatus `json:"status"`
	CreatedAt string      `json:"createdAt,omitempty"`
	UpdatedAt string      `json:"updatedAt,omitempty"`
}

// NewOrderItem is an order line in a create/update payload; the backend
// fills in the current sell price when Price is nil.
type NewOrderItem struct {
	ProductCode string   `json:"productCode"`
	Quantity    int      `json:"quantity"`
	Price       *float64 `json:"price,omitempty"`
}

// TotalsPatch carries only the discount; subtotal and final are always
// recomputed server-side.
type TotalsPatch struct {
	Discount *float64 `json:"discount,omitempty"`
}

// CreateOrderRequest is the payload for creating an order.
type CreateOrderRequest struct {
	Customer Customer       `json:"customer"`
	Items    []NewOrderItem `json:"items"`
	Totals   *TotalsPatch   `json:"totals,omitempty"`
	Status   *OrderStatus   `json:"status,omitempty"`
}

// CustomerPatch mirrors Customer with every field optional.
type CustomerPatch struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	AltPhone *string `json:"alt_phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// UpdateOrderRequest is a sparse patch for an existing order.
type UpdateOrderRequest struct {
	Customer *CustomerPatch `json:"customer,omitempty"`
	Items    []NewOrderItem `json:"items,omitempty"`
	Totals   *TotalsPatch   `json:"totals,omitempty"`
	Status   *OrderStatus   `json:"status,omitempty"`
}
