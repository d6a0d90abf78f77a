package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/mocks"
	"github.com/packlane/box-picker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(mutate func(*RouterConfig)) *gin.Engine {
	packer := service.NewShelfPackerService()
	handler := NewHandler(packer, nil) // nil means catalog from MongoDB is disabled
	cfg := DefaultRouterConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewRouter(handler, NewHealthHandler(), cfg)
}

func TestRouter_Endpoints(t *testing.T) {
	router := newTestRouter(nil)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"liveness probe", http.MethodGet, "/healthz", http.StatusOK},
		{"readiness probe", http.MethodGet, "/readyz", http.StatusOK},
		{"prometheus metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"swagger UI", http.MethodGet, "/swagger/index.html", http.StatusOK},
		{"pack endpoint rejects empty body", http.MethodPost, "/api/pack", http.StatusBadRequest},
		{"boxes endpoint absent without catalog store", http.MethodGet, "/api/boxes", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_PacksItems(t *testing.T) {
	router := newTestRouter(nil)

	body := `{"items":[{"sku":"MUG-1","dimensions":{"length":4,"width":4,"height":3}}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/pack", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"box_id":"BX-S"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_RateLimitEnforced(t *testing.T) {
	router := newTestRouter(func(cfg *RouterConfig) {
		cfg.RateLimit = 2
		cfg.RateWindow = time.Minute
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/boxes", nil)
		req.RemoteAddr = "203.0.113.50:40000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusTooManyRequests, codes[2], "third request in the window must be limited")
}

func TestRouter_RequestTimeoutEnforced(t *testing.T) {
	router := newTestRouter(func(cfg *RouterConfig) {
		cfg.RequestTimeout = 20 * time.Millisecond
	})
	release := make(chan struct{})
	defer close(release)
	router.GET("/slow", func(c *gin.Context) {
		<-release
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestRouter_IdempotencyReplay(t *testing.T) {
	router := newTestRouter(func(cfg *RouterConfig) {
		cfg.EnableIdempotency = true
	})

	body := `{"items":[{"sku":"MUG-1","dimensions":{"length":4,"width":4,"height":3}}]}`
	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/pack", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "order-77")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := send()
	require.Equal(t, http.StatusOK, first.Code)

	second := send()
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
}

func TestRouter_APIKeyEnforced(t *testing.T) {
	router := newTestRouter(func(cfg *RouterConfig) {
		cfg.APIKeys = map[string]bool{"valid-key": true}
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/pack", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/pack", nil)
	req.Header.Set("X-API-Key", "valid-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code) // authenticated, missing body
}

func TestRouter_UpdateBoxesRequiresJWT(t *testing.T) {
	router := newTestRouter(func(cfg *RouterConfig) {
		cfg.JWTSecret = "test-secret"
		cfg.BoxCatalogService = new(mocks.MockBoxCatalogService)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/boxes", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
