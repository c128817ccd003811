package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/inventory"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Material), args.Error(1)
}

func (m *MockMaterialRepository) FindAll(ctx context.Context, warehouseID *uuid.UUID) ([]inventory.Material, error) {
	args := m.Called(ctx, warehouseID)
	return args.Get(0).([]inventory.Material), args.Error(1)
}

func (m *MockMaterialRepository) ExistsInWarehouse(ctx context.Context, warehouseID, materialNameID uuid.UUID) (bool, error) {
	args := m.Called(ctx, warehouseID, materialNameID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMaterialRepository) Save(ctx context.Context, mat *inventory.Material) error {
	return m.Called(ctx, mat).Error(0)
}

func (m *MockMaterialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) FindAll(ctx context.Context) ([]inventory.Unit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]inventory.Unit), args.Error(1)
}

func (m *MockUnitRepository) Save(ctx context.Context, u *inventory.Unit) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type countingPages struct {
	calls int
}

func (c *countingPages) InvalidatePrefix(context.Context, string) error {
	c.calls++
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMaterialService_CreateMaterial_DerivesBalance(t *testing.T) {
	materials := new(MockMaterialRepository)
	pages := &countingPages{}
	svc := NewMaterialService(nil, nil, materials, pages)
	ctx := context.Background()
	req := CreateMaterialRequest{
		WarehouseID:    uuid.New(),
		MaterialNameID: uuid.New(),
		MovementsRequest: MovementsRequest{
			OpeningBalance: dec("100"),
			Purchases:      dec("50.5"),
			Sales:          dec("20"),
			Consumption:    dec("10.25"),
			Manufacturing:  dec("5"),
		},
	}
	materials.On("ExistsInWarehouse", ctx, req.WarehouseID, req.MaterialNameID).Return(false, nil)
	materials.On("Save", ctx, mock.AnythingOfType("*inventory.Material")).Return(nil)

	resp, err := svc.CreateMaterial(ctx, req)

	require.NoError(t, err)
	assert.True(t, dec("125.25").Equal(resp.CurrentBalance), resp.CurrentBalance.String())
	assert.Equal(t, 1, pages.calls)
}

func TestMaterialService_CreateMaterial_Duplicate(t *testing.T) {
	materials := new(MockMaterialRepository)
	svc := NewMaterialService(nil, nil, materials, nil)
	ctx := context.Background()
	req := CreateMaterialRequest{WarehouseID: uuid.New(), MaterialNameID: uuid.New()}
	materials.On("ExistsInWarehouse", ctx, req.WarehouseID, req.MaterialNameID).Return(true, nil)

	_, err := svc.CreateMaterial(ctx, req)

	require.Error(t, err)
	assert.Equal(t, "CONFLICT", shared.ErrorCode(err))
	materials.AssertNotCalled(t, "Save")
}

func TestMaterialService_CreateMaterial_NegativeMovement(t *testing.T) {
	materials := new(MockMaterialRepository)
	svc := NewMaterialService(nil, nil, materials, nil)

	_, err := svc.CreateMaterial(context.Background(), CreateMaterialRequest{
		WarehouseID:      uuid.New(),
		MaterialNameID:   uuid.New(),
		MovementsRequest: MovementsRequest{Sales: dec("-1")},
	})

	require.Error(t, err)
	assert.Equal(t, "INVALID_INPUT", shared.ErrorCode(err))
	materials.AssertNotCalled(t, "ExistsInWarehouse")
}

func TestMaterialService_UpdateMaterial(t *testing.T) {
	materials := new(MockMaterialRepository)
	svc := NewMaterialService(nil, nil, materials, nil)
	ctx := context.Background()
	existing, err := inventory.NewMaterial(uuid.New(), uuid.New(), nil, inventory.Movements{OpeningBalance: dec("10")})
	require.NoError(t, err)
	unit := uuid.New()
	materials.On("FindByID", ctx, existing.ID).Return(existing, nil)
	materials.On("Save", ctx, existing).Return(nil)

	resp, err := svc.UpdateMaterial(ctx, existing.ID, UpdateMaterialRequest{
		UnitID:           &unit,
		MovementsRequest: MovementsRequest{OpeningBalance: dec("10"), Sales: dec("4")},
	})

	require.NoError(t, err)
	assert.True(t, dec("6").Equal(resp.CurrentBalance))
	assert.Equal(t, &unit, resp.UnitID)
}

func TestMaterialService_ListUnits(t *testing.T) {
	units := new(MockUnitRepository)
	svc := NewMaterialService(units, nil, nil, nil)
	ctx := context.Background()
	kg, _ := inventory.NewUnit("kg")
	bag, _ := inventory.NewUnit("bag")
	units.On("FindAll", ctx).Return([]inventory.Unit{*bag, *kg}, nil)

	got, err := svc.ListUnits(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bag", got[0].Name)
	assert.Equal(t, kg.ID, got[1].ID)
}
