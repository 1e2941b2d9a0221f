package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/garagekeep/garagekeep/pkg/apperrors"
	"github.com/garagekeep/garagekeep/pkg/database"
	"github.com/garagekeep/garagekeep/pkg/models"
)

// LocationRepository defines the interface for location data access.
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	Get(ctx context.Context, id int64) (*models.Location, error)
	List(ctx context.Context) ([]*models.Location, error)
	Update(ctx context.Context, location *models.Location) error
	Delete(ctx context.Context, id int64) error
}

// locationRepository implements LocationRepository using PostgreSQL.
type locationRepository struct {
	db *database.DB
}

// NewLocationRepository creates a new location repository.
func NewLocationRepository(db *database.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *models.Location) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO locations (name) VALUES ($1) RETURNING id`,
		location.Name,
	).Scan(&location.ID)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

func (r *locationRepository) Get(ctx context.Context, id int64) (*models.Location, error) {
	var location models.Location
	err := r.db.QueryRow(ctx,
		`SELECT id, name FROM locations WHERE id = $1`, id,
	).Scan(&location.ID, &location.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &location, nil
}

func (r *locationRepository) List(ctx context.Context) ([]*models.Location, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM locations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	locations := []*models.Location{}
	for rows.Next() {
		var location models.Location
		if err := rows.Scan(&location.ID, &location.Name); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, &location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read locations: %w", err)
	}

	return locations, nil
}

func (r *locationRepository) Update(ctx context.Context, location *models.Location) error {
	result, err := r.db.Exec(ctx,
		`UPDATE locations SET name = $2 WHERE id = $1`,
		location.ID, location.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *locationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Ensure locationRepository implements LocationRepository at compile time.
var _ LocationRepository = (*locationRepository)(nil)
