package repository

import (
	"context"

	"inventory-tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a product within the provided transaction and sets its ID.
	Create(ctx context.Context, tx pgx.Tx, product *model.Product) error

	// GetByID retrieves a single product by its ID. Returns nil if absent.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Delete removes a product; its inventory rows go with it.
	// Returns false if no product matched.
	Delete(ctx context.Context, id int64) (bool, error)
}

// LocationRepository defines the interface for location data access operations.
type LocationRepository interface {
	// GetAll retrieves every location ordered by ID.
	GetAll(ctx context.Context) ([]model.Location, error)

	// GetByName retrieves a location by exact name. Returns nil if absent.
	GetByName(ctx context.Context, name string) (*model.Location, error)

	// FindIDByName resolves a location ID inside a transaction.
	// Returns model.ErrLocationNotFound if the name does not match.
	FindIDByName(ctx context.Context, tx pgx.Tx, name string) (int64, error)

	// Create inserts a location unless one with the same name exists.
	// Reports whether a row was inserted.
	Create(ctx context.Context, name string) (bool, error)
}

// InventoryRepository defines the interface for inventory data access operations.
type InventoryRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts an inventory row within the provided transaction and sets its ID.
	Create(ctx context.Context, tx pgx.Tx, inventory *model.Inventory) error

	// GetByID retrieves an inventory row by its ID. Returns nil if absent.
	GetByID(ctx context.Context, id int64) (*model.Inventory, error)

	// AdjustQuantity adds delta to the quantity and returns the new value.
	// Returns model.ErrInventoryNotFound if the row does not exist.
	AdjustQuantity(ctx context.Context, id int64, delta int) (int, error)

	// Delete removes an inventory row. Returns false if no row matched.
	Delete(ctx context.Context, id int64) (bool, error)

	// List returns inventory rows joined with product and location,
	// filtered and ordered according to the directive.
	List(ctx context.Context, directive model.Directive) ([]model.InventoryItem, error)
}
