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

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a product within the provided transaction.
func (r *productRepository) Create(ctx context.Context, tx pgx.Tx, product *model.Product) error {
	query := `
		INSERT INTO products (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query, product.Name, product.Description, product.Price).Scan(&product.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("name", product.Name).
			Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().
		Int64("product_id", product.ID).
		Str("name", product.Name).
		Msg("product created")

	return nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Delete removes a product by ID. Its inventory rows are removed with it.
func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
