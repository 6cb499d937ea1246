package model

// Product represents a sellable item definition.
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
}

// ProductForm carries the raw values submitted when registering a product.
// Quantity and Price are kept as strings until they pass validation.
type ProductForm struct {
	Name        string
	Description string
	Price       string
	Location    string
	Quantity    string
}
