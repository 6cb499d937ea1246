package service

import (
	"context"

	"inventory-tracker/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockTx stubs the transaction methods the service calls.
type MockTx struct {
	pgx.Tx
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, tx pgx.Tx, product *model.Product) error {
	args := m.Called(ctx, tx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockLocationRepository is a mock implementation of LocationRepository.
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) GetAll(ctx context.Context) ([]model.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Location), args.Error(1)
}

func (m *MockLocationRepository) GetByName(ctx context.Context, name string) (*model.Location, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockLocationRepository) FindIDByName(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	args := m.Called(ctx, tx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLocationRepository) Create(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// MockInventoryRepository is a mock implementation of InventoryRepository.
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockInventoryRepository) Create(ctx context.Context, tx pgx.Tx, inventory *model.Inventory) error {
	args := m.Called(ctx, tx, inventory)
	return args.Error(0)
}

func (m *MockInventoryRepository) GetByID(ctx context.Context, id int64) (*model.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) AdjustQuantity(ctx context.Context, id int64, delta int) (int, error) {
	args := m.Called(ctx, id, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryRepository) List(ctx context.Context, directive model.Directive) ([]model.InventoryItem, error) {
	args := m.Called(ctx, directive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InventoryItem), args.Error(1)
}
