package farm

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/farm"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFarmRepository struct {
	mock.Mock
}

func (m *MockFarmRepository) FindByID(ctx context.Context, id uuid.UUID) (*farm.Farm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.Farm), args.Error(1)
}

func (m *MockFarmRepository) FindAll(ctx context.Context) ([]farm.Farm, error) {
	args := m.Called(ctx)
	return args.Get(0).([]farm.Farm), args.Error(1)
}

func (m *MockFarmRepository) Save(ctx context.Context, f *farm.Farm) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFarmRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*farm.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindAll(ctx context.Context, farmID *uuid.UUID) ([]farm.Warehouse, error) {
	args := m.Called(ctx, farmID)
	return args.Get(0).([]farm.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Save(ctx context.Context, w *farm.Warehouse) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockPoultryStatusRepository struct {
	mock.Mock
}

func (m *MockPoultryStatusRepository) FindByID(ctx context.Context, id uuid.UUID) (*farm.PoultryStatus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.PoultryStatus), args.Error(1)
}

func (m *MockPoultryStatusRepository) FindAll(ctx context.Context, farmID *uuid.UUID) ([]farm.PoultryStatus, error) {
	args := m.Called(ctx, farmID)
	return args.Get(0).([]farm.PoultryStatus), args.Error(1)
}

func (m *MockPoultryStatusRepository) Save(ctx context.Context, p *farm.PoultryStatus) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPoultryStatusRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type recordingPages struct {
	prefixes []string
}

func (r *recordingPages) InvalidatePrefix(_ context.Context, prefix string) error {
	r.prefixes = append(r.prefixes, prefix)
	return nil
}

func newTestService() (*Service, *MockFarmRepository, *MockWarehouseRepository, *MockPoultryStatusRepository, *recordingPages) {
	farms := new(MockFarmRepository)
	warehouses := new(MockWarehouseRepository)
	batches := new(MockPoultryStatusRepository)
	pages := &recordingPages{}
	return NewService(farms, warehouses, batches, pages), farms, warehouses, batches, pages
}

func TestService_CreateFarm(t *testing.T) {
	svc, farms, _, _, pages := newTestService()
	ctx := context.Background()
	farms.On("Save", ctx, mock.AnythingOfType("*farm.Farm")).Return(nil)

	resp, err := svc.CreateFarm(ctx, CreateFarmRequest{Name: "  North Farm ", Location: "Hama"})

	require.NoError(t, err)
	assert.Equal(t, "North Farm", resp.Name)
	assert.True(t, resp.IsActive)
	assert.Equal(t, []string{PageFarms}, pages.prefixes)
	farms.AssertExpectations(t)
}

func TestService_CreateFarm_EmptyName(t *testing.T) {
	svc, farms, _, _, pages := newTestService()

	_, err := svc.CreateFarm(context.Background(), CreateFarmRequest{Name: "   "})

	require.Error(t, err)
	assert.Equal(t, "INVALID_INPUT", shared.ErrorCode(err))
	farms.AssertNotCalled(t, "Save")
	assert.Empty(t, pages.prefixes)
}

func TestService_UpdateFarm_KeepsActiveWhenOmitted(t *testing.T) {
	svc, farms, _, _, _ := newTestService()
	ctx := context.Background()
	existing, err := farm.NewFarm("Old", "")
	require.NoError(t, err)
	existing.IsActive = false
	farms.On("FindByID", ctx, existing.ID).Return(existing, nil)
	farms.On("Save", ctx, existing).Return(nil)

	resp, err := svc.UpdateFarm(ctx, existing.ID, UpdateFarmRequest{Name: "New"})

	require.NoError(t, err)
	assert.Equal(t, "New", resp.Name)
	assert.False(t, resp.IsActive)
}

func TestService_CreateWarehouse_UnknownFarm(t *testing.T) {
	svc, farms, warehouses, _, _ := newTestService()
	ctx := context.Background()
	farmID := uuid.New()
	farms.On("FindByID", ctx, farmID).Return(nil, shared.NotFound("farm"))

	_, err := svc.CreateWarehouse(ctx, CreateWarehouseRequest{FarmID: farmID, Name: "W1"})

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err))
	warehouses.AssertNotCalled(t, "Save")
}

func TestService_CreatePoultryStatus(t *testing.T) {
	tests := []struct {
		name    string
		opening int
		dead    int
		wantErr bool
		remain  int
	}{
		{name: "derives remaining", opening: 1000, dead: 25, remain: 975},
		{name: "all dead", opening: 10, dead: 10, remain: 0},
		{name: "dead exceeds opening", opening: 10, dead: 11, wantErr: true},
		{name: "negative opening", opening: -1, dead: 0, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, farms, _, batches, _ := newTestService()
			ctx := context.Background()
			f, _ := farm.NewFarm("F", "")
			farms.On("FindByID", ctx, f.ID).Return(f, nil)
			batches.On("Save", ctx, mock.Anything).Return(nil)

			resp, err := svc.CreatePoultryStatus(ctx, CreatePoultryStatusRequest{
				FarmID: f.ID, BatchName: "Batch 7", OpeningChicks: tt.opening, DeadChicks: tt.dead,
			})
			if tt.wantErr {
				require.Error(t, err)
				batches.AssertNotCalled(t, "Save")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.remain, resp.RemainingChicks)
		})
	}
}

func TestService_DeleteFarm(t *testing.T) {
	svc, farms, _, _, pages := newTestService()
	ctx := context.Background()
	id := uuid.New()
	farms.On("Delete", ctx, id).Return(nil)

	got, err := svc.DeleteFarm(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, []string{PageFarms, PageWarehouses, PagePoultry}, pages.prefixes)
}

func TestService_DeleteWarehouse_RepositoryError(t *testing.T) {
	svc, _, warehouses, _, pages := newTestService()
	ctx := context.Background()
	id := uuid.New()
	warehouses.On("Delete", ctx, id).Return(errors.New("connection reset"))

	_, err := svc.DeleteWarehouse(ctx, id)

	require.Error(t, err)
	assert.Empty(t, pages.prefixes)
}
