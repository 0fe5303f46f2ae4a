package entity

// Restaurant is read-only data served by the upstream API. Field names
// follow the upstream's snake_case payloads.
type Restaurant struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Logo         string  `json:"logo"`
	Cuisine      string  `json:"cuisine"`
	IsVegetarian bool    `json:"is_vegetarian"`
	Rating       float64 `json:"rating"`
	PriceRange   string  `json:"price_range"`
}
