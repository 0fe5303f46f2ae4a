package entity

// MenuItem is read-only data served by the upstream API.
type MenuItem struct {
	ID           int64   `json:"id"`
	RestaurantID int64   `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        string  `json:"image,omitempty"`
	Category     string  `json:"category"`
	IsVegetarian bool    `json:"is_vegetarian"`
	Calories     int     `json:"calories"`
	Recommended  bool    `json:"recommended,omitempty"`
}
