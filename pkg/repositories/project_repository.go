// Package repositories implements PostgreSQL data access for garagekeep.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/garagekeep/garagekeep/pkg/apperrors"
	"github.com/garagekeep/garagekeep/pkg/database"
	"github.com/garagekeep/garagekeep/pkg/models"
)

// ProjectRepository defines the interface for project data access.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	Get(ctx context.Context, id int64) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
}

// projectRepository implements ProjectRepository using PostgreSQL.
type projectRepository struct {
	db *database.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *database.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create inserts a new project. CreationDate is set here; the counter starts
// at zero.
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	project.CreationDate = time.Now().UTC()
	project.LastIndex = 0

	query := `
		INSERT INTO projects (name, creation_date, price, last_index)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		project.Name,
		project.CreationDate,
		project.Price,
		project.LastIndex,
	).Scan(&project.ID)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Get retrieves a project by ID.
func (r *projectRepository) Get(ctx context.Context, id int64) (*models.Project, error) {
	query := `
		SELECT id, name, creation_date, price, last_index
		FROM projects
		WHERE id = $1`

	var project models.Project
	err := r.db.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.Name,
		&project.CreationDate,
		&project.Price,
		&project.LastIndex,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &project, nil
}

// List returns all projects ordered by creation date, oldest first.
func (r *projectRepository) List(ctx context.Context) ([]*models.Project, error) {
	query := `
		SELECT id, name, creation_date, price, last_index
		FROM projects
		ORDER BY creation_date`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.CreationDate,
			&project.Price,
			&project.LastIndex,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	return projects, nil
}

// Update overwrites a project's mutable fields (name, price). CreationDate is
// immutable and last_index belongs to the allocator, so neither is touched.
func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET name = $2, price = $3
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query, project.ID, project.Name, project.Price)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete removes a project by ID. Its items go with it via CASCADE.
func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Ensure projectRepository implements ProjectRepository at compile time.
var _ ProjectRepository = (*projectRepository)(nil)
