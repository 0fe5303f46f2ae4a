package entity

// Bill is a read-only billing projection fetched per customer.
type Bill struct {
	ID           string   `json:"id"`
	CustomerID   string   `json:"userId"`
	RestaurantID int64    `json:"restaurantId"`
	OrderIDs     []string `json:"orderIds"`
	Amount       float64  `json:"amount"`
	CreatedAt    string   `json:"createdAt"`
}
