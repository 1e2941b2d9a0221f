// Package services contains business logic for garagekeep.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/garagekeep/garagekeep/pkg/apperrors"
	"github.com/garagekeep/garagekeep/pkg/models"
	"github.com/garagekeep/garagekeep/pkg/repositories"
)

// ProjectService provides operations for projects.
type ProjectService interface {
	Create(ctx context.Context, name string, price decimal.NullDecimal) (*models.Project, error)
	Get(ctx context.Context, id int64) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, id int64, name string, price decimal.NullDecimal) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	repo   repositories.ProjectRepository
	logger *zap.Logger
}

// NewProjectService creates a new project service.
func NewProjectService(repo repositories.ProjectRepository, logger *zap.Logger) ProjectService {
	return &projectService{
		repo:   repo,
		logger: logger.Named("project-service"),
	}
}

var _ ProjectService = (*projectService)(nil)

func (s *projectService) Create(ctx context.Context, name string, price decimal.NullDecimal) (*models.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: project name is required", apperrors.ErrValidation)
	}

	project := &models.Project{
		Name:  name,
		Price: price,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		s.logger.Error("Failed to create project", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return project, nil
}

func (s *projectService) Get(ctx context.Context, id int64) (*models.Project, error) {
	return s.repo.Get(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) Update(ctx context.Context, id int64, name string, price decimal.NullDecimal) (*models.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: project name is required", apperrors.ErrValidation)
	}

	project, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Name = name
	project.Price = price
	if err := s.repo.Update(ctx, project); err != nil {
		s.logger.Error("Failed to update project", zap.Int64("project_id", id), zap.Error(err))
		return nil, err
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("Failed to delete project", zap.Int64("project_id", id), zap.Error(err))
		}
		return err
	}
	return nil
}
