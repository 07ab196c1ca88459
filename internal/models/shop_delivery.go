package models

// DeliveryItem is one product line delivered to a shop.
type DeliveryItem struct {
	ID       string  `json:"id"`
	Product  string  `json:"product"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// Shop is one stop on a shop delivery run. Items may be empty while the run
// is being edited but every shop must carry at least one item to save.
type Shop struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Owner  string         `json:"owner"`
	Mobile string         `json:"mobile"`
	Items  []DeliveryItem `json:"items"`
}
