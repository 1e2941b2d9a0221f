package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/garagekeep/garagekeep/pkg/apperrors"
	"github.com/garagekeep/garagekeep/pkg/database"
	"github.com/garagekeep/garagekeep/pkg/models"
	"github.com/garagekeep/garagekeep/pkg/retry"
)

// ItemRepository defines the interface for item data access.
//
// Create persists an item with whatever SKU it carries (possibly none).
// CreateWithAllocatedSKU additionally allocates the next SKU from the owning
// project's counter; the counter bump and the item insert commit together or
// not at all.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	CreateWithAllocatedSKU(ctx context.Context, item *models.Item) error
	Get(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context, projectID *int64) ([]*models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id int64) error
}

// itemRepository implements ItemRepository using PostgreSQL.
type itemRepository struct {
	db       *database.DB
	retryCfg *retry.Config
}

// NewItemRepository creates a new item repository.
func NewItemRepository(db *database.DB) ItemRepository {
	return &itemRepository{
		db:       db,
		retryCfg: retry.DefaultConfig(),
	}
}

const itemColumns = `
	i.id, i.name, i.manufacturer_number, i.sku, i.in_price, i.out_price,
	i.in_date, i.out_date, i.status, i.description, i.location_id, i.project_id,
	l.id, l.name,
	p.id, p.name, p.creation_date, p.price, p.last_index`

// Create persists an item without touching the project counter. Used when the
// caller supplied an explicit SKU (or none at all through Update paths).
func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.create(ctx, item, false)
}

// CreateWithAllocatedSKU allocates the next SKU for the item's project and
// persists the item in the same transaction. Lock conflicts between
// concurrent allocations are retried here; callers never see them.
func (r *itemRepository) CreateWithAllocatedSKU(ctx context.Context, item *models.Item) error {
	return retry.DoIfRetryable(ctx, r.retryCfg, func() error {
		return r.create(ctx, item, true)
	})
}

func (r *itemRepository) create(ctx context.Context, item *models.Item, allocateSKU bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback on defer is best-effort

	if allocateSKU {
		// The FOR UPDATE lock makes read-increment-write a critical section
		// per project: a concurrent allocator blocks here until we commit.
		var lastIndex int64
		err := tx.QueryRow(ctx,
			`SELECT last_index FROM projects WHERE id = $1 FOR UPDATE`,
			item.ProjectID,
		).Scan(&lastIndex)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("project %d: %w", item.ProjectID, apperrors.ErrNotFound)
			}
			return classifyPgError("failed to lock project counter", err)
		}

		sku := models.FormatSKU(item.ProjectID, lastIndex)
		item.SKU = &sku

		if _, err := tx.Exec(ctx,
			`UPDATE projects SET last_index = $2 WHERE id = $1`,
			item.ProjectID, lastIndex+1,
		); err != nil {
			return classifyPgError("failed to advance project counter", err)
		}
	} else {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`,
			item.ProjectID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check project: %w", err)
		}
		if !exists {
			return fmt.Errorf("project %d: %w", item.ProjectID, apperrors.ErrNotFound)
		}
	}

	var locationExists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM locations WHERE id = $1)`,
		item.LocationID,
	).Scan(&locationExists)
	if err != nil {
		return fmt.Errorf("failed to check location: %w", err)
	}
	if !locationExists {
		return fmt.Errorf("location %d: %w", item.LocationID, apperrors.ErrNotFound)
	}

	query := `
		INSERT INTO items (name, manufacturer_number, location_id, sku, in_price,
			in_date, out_price, out_date, status, description, project_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err = tx.QueryRow(ctx, query,
		item.Name,
		item.ManufacturerNumber,
		item.LocationID,
		item.SKU,
		item.InPrice,
		item.InDate,
		item.OutPrice,
		item.OutDate,
		item.Status,
		item.Description,
		item.ProjectID,
	).Scan(&item.ID)
	if err != nil {
		return classifyPgError("failed to create item", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return classifyPgError("failed to commit item creation", err)
	}

	return nil
}

// Get retrieves an item by ID with its location and project resolved.
func (r *itemRepository) Get(ctx context.Context, id int64) (*models.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items i
		JOIN locations l ON l.id = i.location_id
		JOIN projects p ON p.id = i.project_id
		WHERE i.id = $1`

	item, err := scanItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// List returns items with locations and projects resolved, most recently
// received first. A non-nil projectID restricts the result to that project.
func (r *itemRepository) List(ctx context.Context, projectID *int64) ([]*models.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items i
		JOIN locations l ON l.id = i.location_id
		JOIN projects p ON p.id = i.project_id`

	args := []any{}
	if projectID != nil {
		query += ` WHERE i.project_id = $1`
		args = append(args, *projectID)
	}
	// id breaks ties between items received in the same instant, keeping
	// repeated reads stable.
	query += ` ORDER BY i.in_date DESC, i.id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []*models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}

	return items, nil
}

// Update overwrites an item's mutable fields. InDate is immutable once set at
// creation and is deliberately excluded.
func (r *itemRepository) Update(ctx context.Context, item *models.Item) error {
	query := `
		UPDATE items
		SET name = $2, manufacturer_number = $3, location_id = $4, sku = $5,
			in_price = $6, out_price = $7, out_date = $8, status = $9,
			description = $10, project_id = $11
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.ManufacturerNumber,
		item.LocationID,
		item.SKU,
		item.InPrice,
		item.OutPrice,
		item.OutDate,
		item.Status,
		item.Description,
		item.ProjectID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("referenced entity: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to update item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete removes an item by ID.
func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// PostgreSQL SQLSTATE codes of interest.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgForeignKeyViolation  = "23503"
)

// classifyPgError wraps serialization failures and deadlocks as transient so
// the retry layer re-runs the allocation instead of surfacing the conflict.
// A foreign-key violation means the referenced project or location vanished
// between the existence checks and the insert, so it maps to not-found.
func classifyPgError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected:
			return &apperrors.TransientError{Err: fmt.Errorf("%s: %w", msg, err)}
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: referenced entity: %w", msg, apperrors.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var item models.Item
	var location models.Location
	var project models.Project

	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.ManufacturerNumber,
		&item.SKU,
		&item.InPrice,
		&item.OutPrice,
		&item.InDate,
		&item.OutDate,
		&item.Status,
		&item.Description,
		&item.LocationID,
		&item.ProjectID,
		&location.ID,
		&location.Name,
		&project.ID,
		&project.Name,
		&project.CreationDate,
		&project.Price,
		&project.LastIndex,
	)
	if err != nil {
		return nil, err
	}

	item.Location = &location
	item.Project = &project
	return &item, nil
}
