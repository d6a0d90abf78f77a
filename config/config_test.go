package config

import (
	"os"
	"testing"
	"time"

	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Zero(t, cfg.Server.RequestTimeout)
		assert.Equal(t, 1000, cfg.Cache.Size)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
		assert.False(t, cfg.Server.EnableIdempotency)
		assert.Empty(t, cfg.Auth.JWTSecretKey)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("REQUEST_TIMEOUT", "15s")
		_ = os.Setenv("CACHE_SIZE", "500")
		_ = os.Setenv("CACHE_TTL", "10m")
		_ = os.Setenv("BOX_CATALOG", "BX-A:4x4x4,BX-B:10x8x6")
		_ = os.Setenv("API_KEYS", "key1,key2")
		_ = os.Setenv("JWT_SECRET_KEY", "secret")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, 500, cfg.Cache.Size)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		assert.Len(t, cfg.Cache.Catalog, 2)
		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.Equal(t, "secret", cfg.Auth.JWTSecretKey)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("IDEMPOTENCY_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Server.EnableIdempotency)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	})

	t.Run("parses API keys with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("API_KEYS", " key1 , key2 , key3 ")
		defer os.Clearenv()

		cfg := Load()

		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.True(t, cfg.Auth.APIKeys["key3"])
	})

	t.Run("parses API key hashes", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("API_KEY_HASHES", "$2a$10$abc, $2a$10$def ")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{"$2a$10$abc", "$2a$10$def"}, cfg.Auth.APIKeyHashes)
	})

	t.Run("returns nil for empty catalog", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Nil(t, cfg.Cache.Catalog)
	})

	t.Run("returns nil for empty API keys", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Nil(t, cfg.Auth.APIKeys)
	})
}

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.Catalog
	}{
		{
			name:  "valid catalog sorted by volume",
			input: "BX-B:10x8x6,BX-A:4x4x4",
			expected: model.NewCatalog([]model.Box{
				{ID: "BX-A", Length: 4, Width: 4, Height: 4},
				{ID: "BX-B", Length: 10, Width: 8, Height: 6},
			}),
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "all entries malformed",
			input:    "BX-A:4x4,BX-B:axbxc,:1x1x1,BX-C:",
			expected: nil,
		},
		{
			name:  "skips non-positive dimensions",
			input: "BX-A:0x4x4,BX-B:10x8x6",
			expected: model.NewCatalog([]model.Box{
				{ID: "BX-B", Length: 10, Width: 8, Height: 6},
			}),
		},
		{
			name:  "trims whitespace",
			input: " BX-A : 4 x 4 x 4 ",
			expected: model.NewCatalog([]model.Box{
				{ID: "BX-A", Length: 4, Width: 4, Height: 4},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCatalog(tt.input))
		})
	}
}
