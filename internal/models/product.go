package models

// Pricing holds the buy/sell prices for a product. Discount is a
// percentage in [0, 100].
type Pricing struct {
	Buy      float64  `json:"buy"`
	Sell     float64  `json:"sell"`
	Discount *float64 `json:"discount,omitempty"`
}

// Media holds image URLs attached to a product.
type Media struct {
	Thumbnail string   `json:"thumbnail,omitempty"`
	Images    []string `json:"images,omitempty"`
}

// Product is a catalog entry as returned by the backend. Code is the
// business key; ID is the storage key.
type Product struct {
	ID          string        `json:"_id"`
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category"`
	Series      string        `json:"series,omitempty"`
	Pricing     Pricing       `json:"pricing"`
	Media       *Media        `json:"media,omitempty"`
	Status      ProductStatus `json:"status"`
	Quantity    int           `json:"quantity"`
	CreatedAt   string        `json:"createdAt,omitempty"`
	UpdatedAt   string        `json:"updatedAt,omitempty"`
}

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Series      string  `json:"series,omitempty"`
	Pricing     Pricing `json:"pricing"`
	Media       *Media  `json:"media,omitempty"`
	Quantity    int     `json:"quantity"`
}

// PricingPatch mirrors Pricing with every field optional.
type PricingPatch struct {
	Buy      *float64 `json:"buy,omitempty"`
	Sell     *float64 `json:"sell,omitempty"`
	Discount *float64 `json:"discount,omitempty"`
}

// UpdateProductRequest is a sparse patch; nil fields are left untouched
// by the backend.
type UpdateProductRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Category    *string        `json:"category,omitempty"`
	Series      *string        `json:"series,omitempty"`
	Pricing     *PricingPatch  `json:"pricing,omitempty"`
	Media       *Media         `json:"media,omitempty"`
	Quantity    *int           `json:"quantity,omitempty"`
	Status      *ProductStatus `json:"status,omitempty"`
}
