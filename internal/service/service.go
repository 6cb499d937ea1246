package service

import (
	"context"

	"inventory-tracker/internal/model"
)

// InventoryService defines the operations of the inventory engine.
type InventoryService interface {
	// AddProduct validates the form, then creates a product and its first
	// inventory row at the named location in one transaction.
	AddProduct(ctx context.Context, form model.ProductForm) (*model.InventoryItem, error)

	// AddLocation registers a location. Reports whether a new row was created.
	AddLocation(ctx context.Context, name string) (bool, error)

	// IncrementQuantity adds one to an inventory row and returns the new quantity.
	IncrementQuantity(ctx context.Context, id int64) (int, error)

	// DecrementQuantity subtracts one from an inventory row and returns the new quantity.
	DecrementQuantity(ctx context.Context, id int64) (int, error)

	// DeleteInventory removes an inventory row, leaving its product and location.
	DeleteInventory(ctx context.Context, id int64) error

	// DeleteProduct removes a product together with all its inventory rows.
	DeleteProduct(ctx context.Context, id int64) error

	// List returns the inventory view selected by the directive.
	List(ctx context.Context, directive model.Directive) ([]model.InventoryItem, error)

	// Locations returns every registered location.
	Locations(ctx context.Context) ([]model.Location, error)
}
