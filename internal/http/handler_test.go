package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/domain/dto"
	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/stretchr/testify/assert"

	"github.com/packlane/box-picker/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter() *gin.Engine {
	packer := service.NewShelfPackerService()
	handler := NewHandler(packer, nil) // nil means catalog from MongoDB is disabled
	healthHandler := NewHealthHandler()
	return NewRouter(handler, healthHandler, DefaultRouterConfig())
}

func postPack(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/pack", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodePackingResult(t *testing.T, w *httptest.ResponseRecorder) model.PackingResult {
	t.Helper()
	var resp dto.SuccessResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.RequestID)
	assert.NotZero(t, resp.Timestamp)

	dataBytes, _ := json.Marshal(resp.Data)
	var result model.PackingResult
	err = json.Unmarshal(dataBytes, &result)
	assert.NoError(t, err)
	return result
}

func TestPackItems(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "single small item fits smallest box",
			body:           `{"items": [{"sku": "A", "dimensions": {"length": 1, "width": 1, "height": 1}}]}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				result := decodePackingResult(t, w)
				assert.Equal(t, 1, result.TotalBoxes)
				assert.Len(t, result.Boxes, 1)
				assert.Equal(t, "BX-S", result.Boxes[0].BoxID)
				assert.Equal(t, []string{"A"}, result.Boxes[0].Items)
			},
		},
		{
			name: "items preserve request order within a box",
			body: `{"items": [
				{"sku": "SKU-3", "dimensions": {"length": 2, "width": 2, "height": 2}},
				{"sku": "SKU-1", "dimensions": {"length": 3, "width": 2, "height": 1}},
				{"sku": "SKU-2", "dimensions": {"length": 1, "width": 1, "height": 4}}
			]}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				result := decodePackingResult(t, w)
				assert.Equal(t, 1, result.TotalBoxes)
				assert.Equal(t, []string{"SKU-3", "SKU-1", "SKU-2"}, result.Boxes[0].Items)
			},
		},
		{
			name: "oversized item yields 422 with details",
			body: `{"items": [
				{"sku": "A", "dimensions": {"length": 1, "width": 1, "height": 1}},
				{"sku": "HUGE", "dimensions": {"length": 10000, "width": 10000, "height": 10000}}
			]}`,
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, dto.ErrCodeItemTooLarge, resp.Error)
				assert.Equal(t, "HUGE", resp.Details["sku"])
				assert.Equal(t, "10000x10000x10000", resp.Details["dimensions"])
				assert.Equal(t, "24x20x20", resp.Details["max_box_dimensions"])
			},
		},
		{
			name: "items exceeding one box spread across multiple boxes",
			body: `{"items": [
				{"sku": "P1", "dimensions": {"length": 8, "width": 8, "height": 8}},
				{"sku": "P2", "dimensions": {"length": 8, "width": 8, "height": 8}},
				{"sku": "P3", "dimensions": {"length": 8, "width": 8, "height": 8}}
			]}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				result := decodePackingResult(t, w)
				assert.GreaterOrEqual(t, result.TotalBoxes, 1)

				// Every SKU appears exactly once across boxes.
				seen := map[string]int{}
				for _, box := range result.Boxes {
					for _, sku := range box.Items {
						seen[sku]++
					}
				}
				assert.Equal(t, map[string]int{"P1": 1, "P2": 1, "P3": 1}, seen)
			},
		},
		{
			name:           "invalid JSON",
			body:           `invalid`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty items list",
			body:           `{"items": []}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing items field",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero dimension",
			body:           `{"items": [{"sku": "A", "dimensions": {"length": 0, "width": 1, "height": 1}}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative dimension",
			body:           `{"items": [{"sku": "A", "dimensions": {"length": -1, "width": 1, "height": 1}}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing sku",
			body:           `{"items": [{"dimensions": {"length": 1, "width": 1, "height": 1}}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate sku",
			body: `{"items": [
				{"sku": "A", "dimensions": {"length": 1, "width": 1, "height": 1}},
				{"sku": "A", "dimensions": {"length": 2, "width": 2, "height": 2}}
			]}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postPack(t, router, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestPackItems_AtomicFailure(t *testing.T) {
	router := setupRouter()

	// The fitting item must not produce a partial result when the
	// oversized one fails the request.
	w := postPack(t, router, `{"items": [
		{"sku": "OK", "dimensions": {"length": 1, "width": 1, "height": 1}},
		{"sku": "HUGE", "dimensions": {"length": 999, "width": 999, "height": 999}}
	]}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.NotContains(t, w.Body.String(), `"boxes"`)
}

func TestPackItems_RequestIDHeader(t *testing.T) {
	router := setupRouter()

	w := postPack(t, router, `{"items": [{"sku": "A", "dimensions": {"length": 1, "width": 1, "height": 1}}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestPackItems_IdempotencyReplay(t *testing.T) {
	packer := service.NewShelfPackerService()
	handler := NewHandler(packer, nil)
	healthHandler := NewHealthHandler()
	cfg := DefaultRouterConfig()
	cfg.EnableIdempotency = true
	router := NewRouter(handler, healthHandler, cfg)

	body := `{"items": [{"sku": "A", "dimensions": {"length": 1, "width": 1, "height": 1}}]}`

	first := httptest.NewRequest(http.MethodPost, "/api/pack", strings.NewReader(body))
	first.Header.Set("Content-Type", "application/json")
	first.Header.Set("Idempotency-Key", "key-1")
	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, first)
	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Empty(t, w1.Header().Get("X-Idempotency-Replayed"))

	second := httptest.NewRequest(http.MethodPost, "/api/pack", strings.NewReader(body))
	second.Header.Set("Content-Type", "application/json")
	second.Header.Set("Idempotency-Key", "key-1")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, second)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "true", w2.Header().Get("X-Idempotency-Replayed"))
}
