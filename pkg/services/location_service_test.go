package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/garagekeep/garagekeep/pkg/apperrors"
	"github.com/garagekeep/garagekeep/pkg/models"
)

// mockLocationRepo implements repositories.LocationRepository against
// in-memory state.
type mockLocationRepo struct {
	locations map[int64]*models.Location
	nextID    int64
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: make(map[int64]*models.Location)}
}

func (m *mockLocationRepo) Create(_ context.Context, location *models.Location) error {
	m.nextID++
	location.ID = m.nextID
	copied := *location
	m.locations[location.ID] = &copied
	return nil
}

func (m *mockLocationRepo) Get(_ context.Context, id int64) (*models.Location, error) {
	location, ok := m.locations[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *location
	return &copied, nil
}

func (m *mockLocationRepo) List(_ context.Context) ([]*models.Location, error) {
	result := []*models.Location{}
	for _, l := range m.locations {
		result = append(result, l)
	}
	return result, nil
}

func (m *mockLocationRepo) Update(_ context.Context, location *models.Location) error {
	if _, ok := m.locations[location.ID]; !ok {
		return apperrors.ErrNotFound
	}
	copied := *location
	m.locations[location.ID] = &copied
	return nil
}

func (m *mockLocationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.locations[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.locations, id)
	return nil
}

func TestLocationService_CreateAndGet(t *testing.T) {
	svc := NewLocationService(newMockLocationRepo(), zap.NewNop())

	created, err := svc.Create(context.Background(), "Shelf A3")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shelf A3", got.Name)
}

func TestLocationService_Create_EmptyName(t *testing.T) {
	svc := NewLocationService(newMockLocationRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLocationService_Update_NotFound(t *testing.T) {
	svc := NewLocationService(newMockLocationRepo(), zap.NewNop())

	_, err := svc.Update(context.Background(), 9, "Bin 4")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
