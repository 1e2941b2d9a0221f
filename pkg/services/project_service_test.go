package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/garagekeep/garagekeep/pkg/apperrors"
	"github.com/garagekeep/garagekeep/pkg/models"
)

// mockProjectRepo implements repositories.ProjectRepository against
// in-memory state.
type mockProjectRepo struct {
	projects map[int64]*models.Project
	nextID   int64
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[int64]*models.Project)}
}

func (m *mockProjectRepo) Create(_ context.Context, project *models.Project) error {
	m.nextID++
	project.ID = m.nextID
	project.CreationDate = time.Now().UTC()
	project.LastIndex = 0
	copied := *project
	m.projects[project.ID] = &copied
	return nil
}

func (m *mockProjectRepo) Get(_ context.Context, id int64) (*models.Project, error) {
	project, ok := m.projects[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *project
	return &copied, nil
}

func (m *mockProjectRepo) List(_ context.Context) ([]*models.Project, error) {
	result := []*models.Project{}
	for _, p := range m.projects {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockProjectRepo) Update(_ context.Context, project *models.Project) error {
	if _, ok := m.projects[project.ID]; !ok {
		return apperrors.ErrNotFound
	}
	copied := *project
	m.projects[project.ID] = &copied
	return nil
}

func (m *mockProjectRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.projects[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.projects, id)
	return nil
}

func TestProjectService_Create(t *testing.T) {
	svc := NewProjectService(newMockProjectRepo(), zap.NewNop())

	price := decimal.NullDecimal{Decimal: decimal.NewFromInt(150), Valid: true}
	project, err := svc.Create(context.Background(), "Engine rebuild", price)
	require.NoError(t, err)

	assert.Equal(t, int64(1), project.ID)
	assert.Equal(t, "Engine rebuild", project.Name)
	assert.True(t, project.Price.Valid)
	assert.False(t, project.CreationDate.IsZero(), "creation date is set server-side")
	assert.Equal(t, int64(0), project.LastIndex, "counter starts at zero")
}

func TestProjectService_Create_EmptyName(t *testing.T) {
	svc := NewProjectService(newMockProjectRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), "   ", decimal.NullDecimal{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestProjectService_Update_PreservesCreationDateAndCounter(t *testing.T) {
	repo := newMockProjectRepo()
	svc := NewProjectService(repo, zap.NewNop())

	created, err := svc.Create(context.Background(), "Engine rebuild", decimal.NullDecimal{})
	require.NoError(t, err)

	// Simulate allocations having advanced the counter.
	repo.projects[created.ID].LastIndex = 5

	updated, err := svc.Update(context.Background(), created.ID, "Engine rebuild v2", decimal.NullDecimal{})
	require.NoError(t, err)

	assert.Equal(t, "Engine rebuild v2", updated.Name)
	assert.Equal(t, created.CreationDate, updated.CreationDate)
	assert.Equal(t, int64(5), updated.LastIndex)
}

func TestProjectService_Update_NotFound(t *testing.T) {
	svc := NewProjectService(newMockProjectRepo(), zap.NewNop())

	_, err := svc.Update(context.Background(), 42, "Name", decimal.NullDecimal{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	svc := NewProjectService(newMockProjectRepo(), zap.NewNop())

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
