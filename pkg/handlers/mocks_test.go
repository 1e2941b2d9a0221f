package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/garagekeep/garagekeep/pkg/models"
	"github.com/garagekeep/garagekeep/pkg/services"
)

// mockProjectService is a configurable mock for handler tests.
type mockProjectService struct {
	project  *models.Project
	projects []*models.Project
	err      error
}

func (m *mockProjectService) Create(_ context.Context, name string, price decimal.NullDecimal) (*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.project != nil {
		return m.project, nil
	}
	return &models.Project{ID: 1, Name: name, Price: price}, nil
}

func (m *mockProjectService) Get(_ context.Context, id int64) (*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.project != nil {
		return m.project, nil
	}
	return &models.Project{ID: id, Name: "Test Project"}, nil
}

func (m *mockProjectService) List(_ context.Context) ([]*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.projects, nil
}

func (m *mockProjectService) Update(_ context.Context, id int64, name string, price decimal.NullDecimal) (*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Project{ID: id, Name: name, Price: price}, nil
}

func (m *mockProjectService) Delete(_ context.Context, id int64) error {
	return m.err
}

// mockLocationService is a configurable mock for handler tests.
type mockLocationService struct {
	location  *models.Location
	locations []*models.Location
	err       error
}

func (m *mockLocationService) Create(_ context.Context, name string) (*models.Location, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Location{ID: 1, Name: name}, nil
}

func (m *mockLocationService) Get(_ context.Context, id int64) (*models.Location, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.location != nil {
		return m.location, nil
	}
	return &models.Location{ID: id, Name: "Test Location"}, nil
}

func (m *mockLocationService) List(_ context.Context) ([]*models.Location, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.locations, nil
}

func (m *mockLocationService) Update(_ context.Context, id int64, name string) (*models.Location, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Location{ID: id, Name: name}, nil
}

func (m *mockLocationService) Delete(_ context.Context, id int64) error {
	return m.err
}

// mockItemService is a configurable mock for handler tests.
type mockItemService struct {
	item      *models.Item
	items     []*models.Item
	err       error
	lastInput services.ItemInput
	gotFilter *int64
}

func (m *mockItemService) Create(_ context.Context, in services.ItemInput) (*models.Item, error) {
	m.lastInput = in
	if m.err != nil {
		return nil, m.err
	}
	if m.item != nil {
		return m.item, nil
	}
	return &models.Item{ID: 1, Name: in.Name, Status: in.Status, LocationID: in.LocationID, ProjectID: in.ProjectID, SKU: in.SKU}, nil
}

func (m *mockItemService) Get(_ context.Context, id int64) (*models.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.item != nil {
		return m.item, nil
	}
	return &models.Item{ID: id, Name: "Test Item", Status: models.StatusInStock}, nil
}

func (m *mockItemService) List(_ context.Context, projectID *int64) ([]*models.Item, error) {
	m.gotFilter = projectID
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *mockItemService) Update(_ context.Context, id int64, in services.ItemInput) (*models.Item, error) {
	m.lastInput = in
	if m.err != nil {
		return nil, m.err
	}
	return &models.Item{ID: id, Name: in.Name, Status: in.Status, LocationID: in.LocationID, ProjectID: in.ProjectID, SKU: in.SKU}, nil
}

func (m *mockItemService) Delete(_ context.Context, id int64) error {
	return m.err
}

var (
	_ services.ProjectService  = (*mockProjectService)(nil)
	_ services.LocationService = (*mockLocationService)(nil)
	_ services.ItemService     = (*mockItemService)(nil)
)
