package models

// Aggregates below are computed entirely by the backend; the console
// renders them as-is and never recomputes any of them.

// ProductCounts breaks the catalog down by status plus the two derived
// stock buckets.
type ProductCounts struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Inactive     int `json:"inactive"`
	Discontinued int `json:"discontinued"`
	SoldOut      int `json:"soldOut"`
	LowStock     int `json:"lowStock"`
	OutOfStock   int `json:"outOfStock"`
}

// OrderCounts covers trailing windows plus a by-status breakdown.
type OrderCounts struct {
	Total         int            `json:"total"`
	ThisMonth     int            `json:"thisMonth"`
	LastMonth     int            `json:"lastMonth"`
	ThisYear      int            `json:"thisYear"`
	Last7Days     int            `json:"last7Days"`
	Last30Days    int            `json:"last30Days"`
	Last90Days    int            `json:"last90Days"`
	ByStatus      map[string]int `json:"byStatus"`
	MonthlyGrowth float64        `json:"monthlyGrowth"`
}

// RevenuePeriod is one accounting window of the revenue aggregates.
type RevenuePeriod struct {
	Revenue           float64 `json:"revenue"`
	Subtotal          float64 `json:"subtotal,omitempty"`
	Discount          float64 `json:"discount,omitempty"`
	OrderCount        int     `json:"orderCount"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// MonthRevenue is one entry of the revenue-by-month series; ID is the
// month number.
type MonthRevenue struct {
	ID                int     `json:"_id"`
	Revenue           float64 `json:"revenue"`
	OrderCount        int     `json:"orderCount"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// RevenueStats is the money side of the dashboard.
type RevenueStats struct {
	Total             float64        `json:"total"`
	TotalSubtotal     float64        `json:"totalSubtotal"`
	TotalDiscount     float64        `json:"totalDiscount"`
	AverageOrderValue float64        `json:"averageOrderValue"`
	CurrentMonth      RevenuePeriod  `json:"currentMonth"`
	LastMonth         RevenuePeriod  `json:"lastMonth"`
	YearToDate        RevenuePeriod  `json:"yearToDate"`
	MonthlyGrowth     float64        `json:"monthlyGrowth"`
	RevenueByMonth    []MonthRevenue `json:"revenueByMonth"`
}

// TopProduct is one row of the top-selling list; ID is the product code.
type TopProduct struct {
	ID             string  `json:"_id"`
	TotalQuantity  int     `json:"totalQuantity"`
	TotalRevenue   float64 `json:"totalRevenue"`
	OrderCount     int     `json:"orderCount"`
	ProductDetails struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	} `json:"productDetails"`
}

// TopCustomer is one row of the top-customers list; ID is the phone number.
type TopCustomer struct {
	ID                string  `json:"_id"`
	Name              string  `json:"name"`
	OrderCount        int     `json:"orderCount"`
	TotalSpent        float64 `json:"totalSpent"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	FirstOrderDate    string  `json:"firstOrderDate"`
	LastOrderDate     string  `json:"lastOrderDate"`
}

// CustomerStats is the customer side of the dashboard.
type CustomerStats struct {
	Total        int           `json:"total"`
	TopCustomers []TopCustomer `json:"topCustomers"`
}

// DashboardStats is the full stats payload.
type DashboardStats struct {
	Products           ProductCounts `json:"products"`
	Orders             OrderCounts   `json:"orders"`
	Revenue            RevenueStats  `json:"revenue"`
	TopSellingProducts []TopProduct  `json:"topSellingProducts"`
	Customers          CustomerStats `json:"customers"`
}

// AlertProduct is one product inside an inventory alert bucket.
type AlertProduct struct {
	Code     string        `json:"code"`
	Name     string        `json:"name"`
	Quantity int           `json:"quantity"`
	Status   ProductStatus `json:"status"`
	Category string        `json:"category"`
}

// AlertBucket is one named group of products needing attention.
type AlertBucket struct {
	Count    int            `json:"count"`
	Products []AlertProduct `json:"products"`
}

// InventoryAlerts is the five-bucket projection returned pre-aggregated
// by the backend.
type InventoryAlerts struct {
	LowStock     AlertBucket `json:"lowStock"`
	OutOfStock   AlertBucket `json:"outOfStock"`
	HighDiscount AlertBucket `json:"highDiscount"`
	Discontinued AlertBucket `json:"discontinued"`
	SoldOut      AlertBucket `json:"soldOut"`
}
