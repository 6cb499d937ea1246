package model

// Inventory is a quantity of a product held at a location.
type Inventory struct {
	ID         int64 `json:"id" db:"id"`
	ProductID  int64 `json:"productId" db:"product_id"`
	LocationID int64 `json:"locationId" db:"location_id"`
	Quantity   int   `json:"quantity" db:"quantity"`
}

// InventoryItem is an inventory row joined with its product and location.
type InventoryItem struct {
	ID       int64    `json:"id"`
	Quantity int      `json:"quantity"`
	Product  Product  `json:"product"`
	Location Location `json:"location"`
}

// InventoryIDRequest is the body accepted by the quantity and delete endpoints.
type InventoryIDRequest struct {
	ID int64 `json:"id"`
}

// ResultResponse is the JSON payload returned after an inventory mutation.
type ResultResponse struct {
	Result   string `json:"result"`
	Quantity *int   `json:"quantity,omitempty"`
}
