// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/packlane/box-picker/internal/repository"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockBoxCatalogRepositoryInterface struct {
	mock.Mock
}

func (m *MockBoxCatalogRepositoryInterface) GetActive(ctx context.Context) (*repository.BoxCatalogConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxCatalogConfig), args.Error(1)
}

func (m *MockBoxCatalogRepositoryInterface) Create(ctx context.Context, boxes []repository.BoxSpec, createdBy string) (*repository.BoxCatalogConfig, error) {
	args := m.Called(ctx, boxes, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxCatalogConfig), args.Error(1)
}

func (m *MockBoxCatalogRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, boxes []repository.BoxSpec, updatedBy string) (*repository.BoxCatalogConfig, error) {
	args := m.Called(ctx, id, boxes, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxCatalogConfig), args.Error(1)
}

func (m *MockBoxCatalogRepositoryInterface) List(ctx context.Context, limit int) ([]repository.BoxCatalogConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BoxCatalogConfig), args.Error(1)
}
