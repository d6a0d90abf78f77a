// Package config provides configuration management for the box picker service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/packlane/box-picker/internal/domain/model"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port              string
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	EnableIdempotency bool
}

// CacheConfig holds cache configuration.
type CacheConfig struct {
	Size    int
	TTL     time.Duration
	Catalog model.Catalog
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKeys      map[string]bool
	APIKeyHashes []string
	JWTSecretKey string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "8080"),
			RateLimit:         getEnvInt("RATE_LIMIT", 100),
			RateWindow:        getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 0),
			CORSOrigins:       parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:       getEnv("SWAGGER_USER", ""),
			SwaggerPass:       getEnv("SWAGGER_PASS", ""),
			EnableIdempotency: getEnvBool("IDEMPOTENCY_ENABLED", false),
		},
		Cache: CacheConfig{
			Size:    getEnvInt("CACHE_SIZE", 1000),
			TTL:     getEnvDuration("CACHE_TTL", 5*time.Minute),
			Catalog: ParseCatalog(os.Getenv("BOX_CATALOG")),
		},
		Auth: AuthConfig{
			APIKeys:      parseAPIKeys(os.Getenv("API_KEYS")),
			APIKeyHashes: parseStringSlice(os.Getenv("API_KEY_HASHES")),
			JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "box_picker"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

// ParseCatalog parses a catalog definition of the form
// "BX-S:8x6x4,BX-M:12x10x6". Entries with malformed or non-positive
// dimensions are skipped. An empty or fully invalid value yields nil,
// which leaves the built-in default catalog in effect.
func ParseCatalog(s string) model.Catalog {
	if s == "" {
		return nil
	}

	var boxes []model.Box
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		idx := strings.Index(entry, ":")
		if idx <= 0 || idx == len(entry)-1 {
			continue
		}
		id := strings.TrimSpace(entry[:idx])

		dims := strings.Split(entry[idx+1:], "x")
		if len(dims) != 3 {
			continue
		}

		vals := make([]int, 3)
		ok := true
		for i, d := range dims {
			v, err := strconv.Atoi(strings.TrimSpace(d))
			if err != nil || v <= 0 {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}

		boxes = append(boxes, model.Box{
			ID:     id,
			Length: vals[0],
			Width:  vals[1],
			Height: vals[2],
		})
	}

	if len(boxes) == 0 {
		return nil
	}
	return model.NewCatalog(boxes)
}

// envOr reads key from the environment and parses it with parse, falling
// back when the variable is unset, empty, or malformed.
func envOr[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		return fallback
	}
	return v
}

func getEnv(key, fallback string) string {
	return envOr(key, fallback, func(s string) (string, error) { return s, nil })
}

func getEnvInt(key string, fallback int) int {
	return envOr(key, fallback, strconv.Atoi)
}

func getEnvBool(key string, fallback bool) bool {
	return envOr(key, fallback, strconv.ParseBool)
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	return envOr(key, fallback, time.ParseDuration)
}

// parseStringSlice splits a comma-separated value, dropping empty parts.
func parseStringSlice(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func parseAPIKeys(s string) map[string]bool {
	keys := parseStringSlice(s)
	if len(keys) == 0 {
		return nil
	}
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		result[k] = true
	}
	return result
}

// parseCORSOrigins appends configured origins to the local development
// defaults.
func parseCORSOrigins(s string) []string {
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	return append(defaults, parseStringSlice(s)...)
}
