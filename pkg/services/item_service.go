package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/garagekeep/garagekeep/pkg/apperrors"
	"github.com/garagekeep/garagekeep/pkg/models"
	"github.com/garagekeep/garagekeep/pkg/repositories"
)

// ItemInput carries caller-supplied item fields for create and update.
type ItemInput struct {
	Name               string
	ManufacturerNumber *string
	SKU                *string
	InPrice            decimal.NullDecimal
	OutPrice           decimal.NullDecimal
	OutDate            *time.Time
	Status             models.ItemStatus
	Description        *string
	LocationID         int64
	ProjectID          int64
}

// ItemService provides operations for inventory items.
type ItemService interface {
	Create(ctx context.Context, in ItemInput) (*models.Item, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context, projectID *int64) ([]*models.Item, error)
	Update(ctx context.Context, id int64, in ItemInput) (*models.Item, error)
	Delete(ctx context.Context, id int64) error
}

type itemService struct {
	repo   repositories.ItemRepository
	logger *zap.Logger
}

// NewItemService creates a new item service.
func NewItemService(repo repositories.ItemRepository, logger *zap.Logger) ItemService {
	return &itemService{
		repo:   repo,
		logger: logger.Named("item-service"),
	}
}

var _ ItemService = (*itemService)(nil)

func validateItemInput(in *ItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: item name is required", apperrors.ErrValidation)
	}
	if in.LocationID == 0 {
		return fmt.Errorf("%w: locationId is required", apperrors.ErrValidation)
	}
	if in.ProjectID == 0 {
		return fmt.Errorf("%w: projectId is required", apperrors.ErrValidation)
	}
	if in.Status == "" {
		in.Status = models.StatusInStock
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, in.Status)
	}
	return nil
}

// Create persists a new item. InDate is always set to the current server
// time. When no SKU is supplied, the next one is allocated from the project's
// counter; a caller-supplied SKU is taken verbatim and the counter is left
// alone.
func (s *itemService) Create(ctx context.Context, in ItemInput) (*models.Item, error) {
	if err := validateItemInput(&in); err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:               in.Name,
		ManufacturerNumber: in.ManufacturerNumber,
		InPrice:            in.InPrice,
		OutPrice:           in.OutPrice,
		InDate:             time.Now().UTC(),
		Status:             in.Status,
		Description:        in.Description,
		LocationID:         in.LocationID,
		ProjectID:          in.ProjectID,
	}

	if in.SKU != nil && *in.SKU != "" {
		item.SKU = in.SKU
		if err := s.repo.Create(ctx, item); err != nil {
			s.logError("Failed to create item", item.ProjectID, err)
			return nil, err
		}
	} else {
		if err := s.repo.CreateWithAllocatedSKU(ctx, item); err != nil {
			s.logError("Failed to create item with allocated SKU", item.ProjectID, err)
			return nil, err
		}
	}

	return item, nil
}

func (s *itemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	return s.repo.Get(ctx, id)
}

func (s *itemService) List(ctx context.Context, projectID *int64) ([]*models.Item, error) {
	return s.repo.List(ctx, projectID)
}

// Update overwrites an item's mutable fields. The SKU is whatever the caller
// sends; updates never allocate.
func (s *itemService) Update(ctx context.Context, id int64, in ItemInput) (*models.Item, error) {
	if err := validateItemInput(&in); err != nil {
		return nil, err
	}

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.ManufacturerNumber = in.ManufacturerNumber
	item.SKU = in.SKU
	item.InPrice = in.InPrice
	item.OutPrice = in.OutPrice
	item.OutDate = in.OutDate
	item.Status = in.Status
	item.Description = in.Description
	item.LocationID = in.LocationID
	item.ProjectID = in.ProjectID

	if err := s.repo.Update(ctx, item); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logError("Failed to update item", item.ProjectID, err)
		}
		return nil, err
	}

	return s.repo.Get(ctx, id)
}

func (s *itemService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("Failed to delete item", zap.Int64("item_id", id), zap.Error(err))
		}
		return err
	}
	return nil
}

func (s *itemService) logError(msg string, projectID int64, err error) {
	s.logger.Error(msg, zap.Int64("project_id", projectID), zap.Error(err))
}
