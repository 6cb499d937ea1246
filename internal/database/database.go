package database

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"inventory-tracker/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

//go:embed schema.sql
var schema string

// Tables lists the tables the schema creates.
var Tables = []string{"products", "locations", "inventory"}

// Schema returns the DDL applied by Migrate.
func Schema() string {
	return schema
}

// NewPool creates a new PostgreSQL connection pool.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	logger.Info().
		Str("host", poolConfig.ConnConfig.Host).
		Uint16("port", poolConfig.ConnConfig.Port).
		Str("database", poolConfig.ConnConfig.Database).
		Int("max_connections", cfg.MaxConnections).
		Int("min_connections", cfg.MinConnections).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("database connection pool created successfully")

	return pool, nil
}

// Migrate applies the schema. Every statement is idempotent so it is safe to
// run on each start.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		logger.Error().Err(err).Msg("failed to apply schema")
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info().Msg("database schema is up to date")
	return nil
}

// VerifySchema checks that every table in Tables exists.
func VerifySchema(ctx context.Context, pool *pgxpool.Pool) error {
	var found int
	err := pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = current_schema()
		AND table_name::text = ANY($1::text[])
	`, Tables).Scan(&found)
	if err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}

	if found != len(Tables) {
		return fmt.Errorf("schema incomplete: found %d of %d tables", found, len(Tables))
	}

	return nil
}
