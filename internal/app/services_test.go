//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/packlane/box-picker/config"
	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packOneUnitItem(t *testing.T, components *ServiceComponents) model.PackingResult {
	t.Helper()
	require.NotNil(t, components.Packer)

	result, err := components.Packer.Pack([]model.Item{
		{SKU: "A", Length: 1, Width: 1, Height: 1, Position: 0},
	})
	require.NoError(t, err)
	return result
}

func TestInitializeServices(t *testing.T) {
	customCatalog := model.NewCatalog([]model.Box{
		{ID: "BX-A", Length: 5, Width: 5, Height: 5},
		{ID: "BX-B", Length: 15, Width: 10, Height: 10},
	})

	t.Run("default config packs into the compiled-in catalog", func(t *testing.T) {
		result := packOneUnitItem(t, InitializeServices(config.CacheConfig{}))
		assert.Equal(t, "BX-S", result.Boxes[0].BoxID)
	})

	t.Run("cache enabled does not change packing output", func(t *testing.T) {
		result := packOneUnitItem(t, InitializeServices(config.CacheConfig{Size: 1000, TTL: 5 * time.Minute}))
		assert.Equal(t, 1, result.TotalBoxes)
		assert.Equal(t, "BX-S", result.Boxes[0].BoxID)
	})

	t.Run("custom catalog replaces the default boxes", func(t *testing.T) {
		result := packOneUnitItem(t, InitializeServices(config.CacheConfig{Catalog: customCatalog}))
		assert.Equal(t, "BX-A", result.Boxes[0].BoxID)
	})

	t.Run("custom catalog with cache", func(t *testing.T) {
		components := InitializeServices(config.CacheConfig{
			Catalog: customCatalog,
			Size:    500,
			TTL:     10 * time.Minute,
		})
		result := packOneUnitItem(t, components)
		assert.Equal(t, "BX-A", result.Boxes[0].BoxID)
	})

	t.Run("zero cache size disables the cache but still packs", func(t *testing.T) {
		result := packOneUnitItem(t, InitializeServices(config.CacheConfig{Size: 0, TTL: 5 * time.Minute}))
		assert.Equal(t, 1, result.TotalBoxes)
	})
}

func TestServiceComponents_PackerUsesCustomCatalog(t *testing.T) {
	components := InitializeServices(config.CacheConfig{
		Catalog: model.NewCatalog([]model.Box{
			{ID: "ONLY", Length: 2, Width: 2, Height: 2},
		}),
	})

	result, err := components.Packer.Pack([]model.Item{
		{SKU: "A", Length: 1, Width: 1, Height: 1, Position: 0},
	})
	assert.NoError(t, err)
	assert.Equal(t, "ONLY", result.Boxes[0].BoxID)

	// An item outside the custom catalog cannot be packed.
	_, err = components.Packer.Pack([]model.Item{
		{SKU: "BIG", Length: 3, Width: 3, Height: 3, Position: 0},
	})
	assert.Error(t, err)
}
