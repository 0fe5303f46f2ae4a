package entity

// Order statuses as the upstream kitchen reports them.
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderServed    = "served"
	OrderCompleted = "completed"
)

// OrderLine is one submitted line item.
type OrderLine struct {
	MenuItemID int64   `json:"menuItemId"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
}

// Order is an upstream order projection (unbilled-order views).
type Order struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"userId"`
	RestaurantID    int64       `json:"restaurantId"`
	TableNumber     string      `json:"tableNumber"`
	Status          string      `json:"status"`
	Items           []OrderLine `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	SpecialRequests string      `json:"specialRequests,omitempty"`
	CreatedAt       string      `json:"createdAt"`
}

// OrderConfirmation is what the upstream returns for a placed order.
type OrderConfirmation struct {
	OrderID     string  `json:"orderId"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"totalAmount"`
}
