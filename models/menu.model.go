package models

// MenuItem represents a dish on the storefront menu.
// ID is the store-assigned identity rendered as an opaque string.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Emoji       string  `json:"emoji"`
}
