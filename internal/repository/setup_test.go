package repository

import (
	"context"
	"testing"
	"time"

	"inventory-tracker/internal/database"
	"inventory-tracker/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer with the schema applied.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, pool, zerolog.Nop()))

	t.Cleanup(func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	})

	return pool
}

// seedLocation inserts a location and returns its ID.
func seedLocation(t *testing.T, pool *pgxpool.Pool, name string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO locations (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

// seedItem inserts a product with one inventory row at the location.
func seedItem(t *testing.T, pool *pgxpool.Pool, p model.Product, locationID int64, quantity int) model.InventoryItem {
	t.Helper()

	ctx := context.Background()

	err := pool.QueryRow(ctx,
		`INSERT INTO products (name, description, price) VALUES ($1, $2, $3) RETURNING id`,
		p.Name, p.Description, p.Price).Scan(&p.ID)
	require.NoError(t, err)

	var id int64
	err = pool.QueryRow(ctx,
		`INSERT INTO inventory (product_id, location_id, quantity) VALUES ($1, $2, $3) RETURNING id`,
		p.ID, locationID, quantity).Scan(&id)
	require.NoError(t, err)

	return model.InventoryItem{ID: id, Quantity: quantity, Product: p}
}

func countRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var count int
	err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count)
	require.NoError(t, err)
	return count
}
