package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/garagekeep/garagekeep/pkg/apperrors"
	"github.com/garagekeep/garagekeep/pkg/models"
	"github.com/garagekeep/garagekeep/pkg/repositories"
)

// LocationService provides operations for storage locations.
type LocationService interface {
	Create(ctx context.Context, name string) (*models.Location, error)
	Get(ctx context.Context, id int64) (*models.Location, error)
	List(ctx context.Context) ([]*models.Location, error)
	Update(ctx context.Context, id int64, name string) (*models.Location, error)
	Delete(ctx context.Context, id int64) error
}

type locationService struct {
	repo   repositories.LocationRepository
	logger *zap.Logger
}

// NewLocationService creates a new location service.
func NewLocationService(repo repositories.LocationRepository, logger *zap.Logger) LocationService {
	return &locationService{
		repo:   repo,
		logger: logger.Named("location-service"),
	}
}

var _ LocationService = (*locationService)(nil)

func (s *locationService) Create(ctx context.Context, name string) (*models.Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: location name is required", apperrors.ErrValidation)
	}

	location := &models.Location{Name: name}
	if err := s.repo.Create(ctx, location); err != nil {
		s.logger.Error("Failed to create location", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return location, nil
}

func (s *locationService) Get(ctx context.Context, id int64) (*models.Location, error) {
	return s.repo.Get(ctx, id)
}

func (s *locationService) List(ctx context.Context) ([]*models.Location, error) {
	return s.repo.List(ctx)
}

func (s *locationService) Update(ctx context.Context, id int64, name string) (*models.Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: location name is required", apperrors.ErrValidation)
	}

	location := &models.Location{ID: id, Name: name}
	if err := s.repo.Update(ctx, location); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("Failed to update location", zap.Int64("location_id", id), zap.Error(err))
		}
		return nil, err
	}
	return location, nil
}

func (s *locationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("Failed to delete location", zap.Int64("location_id", id), zap.Error(err))
		}
		return err
	}
	return nil
}
