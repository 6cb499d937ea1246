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

type locationRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewLocationRepository creates a new PostgreSQL-backed location repository.
func NewLocationRepository(pool *pgxpool.Pool, logger zerolog.Logger) LocationRepository {
	return &locationRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "location").Logger(),
	}
}

// GetAll retrieves every location ordered by ID.
func (r *locationRepository) GetAll(ctx context.Context) ([]model.Location, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM locations ORDER BY id`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query locations")
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	locations := []model.Location{}
	for rows.Next() {
		var l model.Location
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan location row")
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating location rows")
		return nil, fmt.Errorf("error iterating locations: %w", err)
	}

	return locations, nil
}

// GetByName retrieves a location by exact name. It returns nil if none exists.
func (r *locationRepository) GetByName(ctx context.Context, name string) (*model.Location, error) {
	var l model.Location
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM locations WHERE name = $1 ORDER BY id LIMIT 1`, name).
		Scan(&l.ID, &l.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("location", name).Msg("failed to query location")
		return nil, fmt.Errorf("failed to query location: %w", err)
	}

	return &l, nil
}

// FindIDByName resolves a location name to its ID within the provided
// transaction.
func (r *locationRepository) FindIDByName(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM locations WHERE name = $1 ORDER BY id LIMIT 1`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("location", name).Msg("location not found")
			return 0, model.ErrLocationNotFound
		}
		r.logger.Error().Err(err).Str("location", name).Msg("failed to resolve location")
		return 0, fmt.Errorf("failed to resolve location: %w", err)
	}

	return id, nil
}

// Create inserts a location and reports whether a row was added. It relies on
// the unique name constraint, so concurrent identical requests still produce
// a single row.
func (r *locationRepository) Create(ctx context.Context, name string) (bool, error) {
	query := `
		INSERT INTO locations (name)
		VALUES ($1)
		ON CONFLICT ON CONSTRAINT locations_name_key DO NOTHING
	`

	tag, err := r.pool.Exec(ctx, query, name)
	if err != nil {
		r.logger.Error().Err(err).Str("location", name).Msg("failed to create location")
		return false, fmt.Errorf("failed to create location: %w", err)
	}

	created := tag.RowsAffected() > 0
	r.logger.Debug().
		Str("location", name).
		Bool("created", created).
		Msg("location upserted")

	return created, nil
}
