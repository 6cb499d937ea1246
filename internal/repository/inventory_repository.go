package repository

import (
	"context"
	"errors"
	"fmt"

	"inventory-tracker/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const inventorySelect = `
	SELECT i.id, i.quantity,
	       p.id, p.name, COALESCE(p.description, ''), p.price,
	       l.id, l.name
	FROM inventory i
	JOIN products p ON p.id = i.product_id
	JOIN locations l ON l.id = i.location_id
`

// inventoryRepository implements the InventoryRepository interface using PostgreSQL.
type inventoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewInventoryRepository creates a new PostgreSQL-backed inventory repository.
func NewInventoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) InventoryRepository {
	return &inventoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "inventory").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *inventoryRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts an inventory row within the provided transaction.
func (r *inventoryRepository) Create(ctx context.Context, tx pgx.Tx, inventory *model.Inventory) error {
	query := `
		INSERT INTO inventory (product_id, location_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query, inventory.ProductID, inventory.LocationID, inventory.Quantity).
		Scan(&inventory.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("product_id", inventory.ProductID).
			Int64("location_id", inventory.LocationID).
			Msg("failed to create inventory")
		return fmt.Errorf("failed to create inventory: %w", err)
	}

	r.logger.Debug().
		Int64("inventory_id", inventory.ID).
		Int("quantity", inventory.Quantity).
		Msg("inventory created successfully")

	return nil
}

// GetByID retrieves an inventory row by its ID.
func (r *inventoryRepository) GetByID(ctx context.Context, id int64) (*model.Inventory, error) {
	query := `
		SELECT id, product_id, location_id, quantity
		FROM inventory
		WHERE id = $1
	`

	var inv model.Inventory
	err := r.pool.QueryRow(ctx, query, id).Scan(&inv.ID, &inv.ProductID, &inv.LocationID, &inv.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("inventory_id", id).Msg("inventory not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("inventory_id", id).Msg("failed to query inventory")
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}

	return &inv, nil
}

// AdjustQuantity changes the quantity in a single statement so concurrent
// adjustments never lose an update.
func (r *inventoryRepository) AdjustQuantity(ctx context.Context, id int64, delta int) (int, error) {
	query := `
		UPDATE inventory
		SET quantity = quantity + $2
		WHERE id = $1
		RETURNING quantity
	`

	var quantity int
	err := r.pool.QueryRow(ctx, query, id, delta).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("inventory_id", id).Msg("inventory not found")
			return 0, model.ErrInventoryNotFound
		}
		r.logger.Error().
			Err(err).
			Int64("inventory_id", id).
			Int("delta", delta).
			Msg("failed to update quantity")
		return 0, fmt.Errorf("failed to update quantity: %w", err)
	}

	return quantity, nil
}

// Delete removes an inventory row. Product and location rows are untouched.
func (r *inventoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("inventory_id", id).Msg("failed to delete inventory")
		return false, fmt.Errorf("failed to delete inventory: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// List retrieves inventory rows for the given directive.
func (r *inventoryRepository) List(ctx context.Context, directive model.Directive) ([]model.InventoryItem, error) {
	query, args, err := listQuery(directive)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("directive", string(directive.Kind)).
			Msg("failed to query inventory")
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	items := []model.InventoryItem{}
	for rows.Next() {
		var item model.InventoryItem
		err := rows.Scan(
			&item.ID,
			&item.Quantity,
			&item.Product.ID,
			&item.Product.Name,
			&item.Product.Description,
			&item.Product.Price,
			&item.Location.ID,
			&item.Location.Name,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan inventory row")
			return nil, fmt.Errorf("failed to scan inventory: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating inventory rows")
		return nil, fmt.Errorf("error iterating inventory: %w", err)
	}

	return items, nil
}

// listQuery builds the SQL for a directive. Substring matches use strpos so
// that % and _ in the term are matched literally. Every ordering ends with the
// row id to keep ties stable.
func listQuery(directive model.Directive) (string, []any, error) {
	switch directive.Kind {
	case model.DirectiveNone:
		return inventorySelect + ` ORDER BY i.id`, nil, nil
	case model.DirectiveSearch:
		return inventorySelect + ` WHERE strpos(lower(p.name), lower($1)) > 0 ORDER BY i.id`,
			[]any{directive.Term}, nil
	case model.DirectiveQuantityAsc:
		return inventorySelect + ` ORDER BY i.quantity ASC, i.id`, nil, nil
	case model.DirectiveQuantityDesc:
		return inventorySelect + ` ORDER BY i.quantity DESC, i.id`, nil, nil
	case model.DirectivePriceAsc:
		return inventorySelect + ` ORDER BY p.price ASC, i.id`, nil, nil
	case model.DirectivePriceDesc:
		return inventorySelect + ` ORDER BY p.price DESC, i.id`, nil, nil
	case model.DirectiveLocation:
		return inventorySelect + ` WHERE strpos(l.name, $1) > 0 ORDER BY i.id`,
			[]any{directive.Term}, nil
	default:
		return "", nil, fmt.Errorf("unsupported listing directive %q", directive.Kind)
	}
}
