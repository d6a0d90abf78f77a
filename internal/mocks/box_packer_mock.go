// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockBoxPacker struct {
	mock.Mock
}

func (m *MockBoxPacker) Pack(items []model.Item) (model.PackingResult, error) {
	args := m.Called(items)
	return args.Get(0).(model.PackingResult), args.Error(1)
}

func (m *MockBoxPacker) PackWithCatalog(items []model.Item, catalog model.Catalog) (model.PackingResult, error) {
	args := m.Called(items, catalog)
	return args.Get(0).(model.PackingResult), args.Error(1)
}

func (m *MockBoxPacker) InvalidateCache() {
	m.Called()
}
