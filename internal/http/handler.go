package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/domain/dto"
	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/packlane/box-picker/internal/i18n"
	"github.com/packlane/box-picker/internal/metrics"
	"github.com/packlane/box-picker/internal/middleware"
	"github.com/packlane/box-picker/internal/service"
)

// boxCatalogCache provides thread-safe caching of the active box catalog.
type boxCatalogCache struct {
	catalog   atomic.Value // holds model.Catalog
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newBoxCatalogCache creates a new box catalog cache with the given TTL.
func newBoxCatalogCache(ttl time.Duration) *boxCatalogCache {
	c := &boxCatalogCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

func (c *boxCatalogCache) valid() bool {
	expiresAt, ok := c.expiresAt.Load().(time.Time)
	return ok && time.Now().Before(expiresAt)
}

// get returns the cached catalog, or nil when the cache is expired or empty.
func (c *boxCatalogCache) get() model.Catalog {
	if !c.valid() {
		return nil
	}
	catalog, _ := c.catalog.Load().(model.Catalog)
	return catalog
}

// set stores the catalog for one TTL. A concurrent set that already
// refreshed the cache wins.
func (c *boxCatalogCache) set(catalog model.Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid() {
		return
	}

	c.catalog.Store(catalog)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *boxCatalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// loggingServiceFrom extracts the logging service the router stashed on the
// context, when one is configured.
func loggingServiceFrom(c *gin.Context) (service.LoggingService, bool) {
	v, exists := c.Get("logging_service")
	if !exists {
		return nil, false
	}
	ls, ok := v.(service.LoggingService)
	return ls, ok
}

// Handler provides HTTP handlers for packing routes.
type Handler struct {
	packer         service.BoxPacker
	catalogService service.BoxCatalogService
	catalogCache   *boxCatalogCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCatalogCacheTTL sets the TTL for box catalog caching.
func WithCatalogCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.catalogCache = newBoxCatalogCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(packer service.BoxPacker, catalogService service.BoxCatalogService, opts ...HandlerOption) *Handler {
	h := &Handler{
		packer:         packer,
		catalogService: catalogService,
		catalogCache:   newBoxCatalogCache(30 * time.Second),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getCatalog retrieves the active box catalog from cache or database.
// Returns nil when no stored catalog exists; callers fall back to the
// packer's configured catalog.
func (h *Handler) getCatalog(ctx context.Context) model.Catalog {
	if catalog := h.catalogCache.get(); catalog != nil {
		return catalog
	}

	if h.catalogService == nil {
		return nil
	}

	// The packer's built-in catalog covers a slow store.
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	config, err := h.catalogService.GetActive(ctx)
	if err != nil || config == nil || len(config.Boxes) == 0 {
		return nil
	}

	catalog := service.CatalogFromConfig(config)
	h.catalogCache.set(catalog)
	return catalog
}

// InvalidateCatalogCache invalidates the box catalog cache.
// Call this when the catalog is updated.
func (h *Handler) InvalidateCatalogCache() {
	h.catalogCache.invalidate()
}

// PackItems handles POST /api/pack requests.
//
// @Summary      Pack items into boxes
// @Description  Assigns every item of the request to shipping boxes from the active catalog, preferring a single box and minimizing box count otherwise. Items that fit no catalog box fail the whole request. Supports idempotency via Idempotency-Key header.
// @Tags         Packing
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.PackItemsRequest true "Items to pack"
// @Success      200 {object} dto.SuccessResponse "Successful packing"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - item too large or packing failed"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/pack [post]
func (h *Handler) PackItems(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.PackItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		var verr *dto.ValidationError
		if errors.As(err, &verr) {
			metrics.RecordBoxPacking(0, "validation_error", len(req.Items), 0)
			builder.ErrorWithMessage(http.StatusBadRequest, verr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	if ls, ok := loggingServiceFrom(c); ok {
		middleware.AuditLog(ls, c, "pack", "Packing requested", map[string]interface{}{
			"items": len(req.Items),
		})
	}

	items := make([]model.Item, len(req.Items))
	for i, in := range req.Items {
		items[i] = model.Item{
			SKU:      in.SKU,
			Length:   in.Dimensions.Length,
			Width:    in.Dimensions.Width,
			Height:   in.Dimensions.Height,
			Position: i,
		}
	}

	start := time.Now()

	var result model.PackingResult
	var err error
	if catalog := h.getCatalog(c.Request.Context()); catalog != nil {
		result, err = h.packer.PackWithCatalog(items, catalog)
	} else {
		result, err = h.packer.Pack(items)
	}

	duration := time.Since(start)

	if err != nil {
		h.packError(c, builder, err, len(items), duration)
		return
	}

	metrics.RecordBoxPacking(duration, "success", len(items), result.TotalBoxes)
	builder.SuccessOK(result)
}

// packError maps packing failures to HTTP responses. Items that exceed
// every catalog box yield 422 with the offending SKU in the details;
// any other failure is a generic packing error.
func (h *Handler) packError(c *gin.Context, builder *ResponseBuilder, err error, itemCount int, duration time.Duration) {
	var unfittable *service.UnfittableItemError
	if errors.As(err, &unfittable) {
		metrics.RecordBoxPacking(duration, "item_too_large", itemCount, 0)
		builder.ErrorWithDetails(
			http.StatusUnprocessableEntity,
			dto.ErrCodeItemTooLarge,
			unfittable.Error(),
			map[string]string{
				"sku":                unfittable.SKU,
				"dimensions":         fmt.Sprintf("%dx%dx%d", unfittable.Length, unfittable.Width, unfittable.Height),
				"max_box_dimensions": fmt.Sprintf("%dx%dx%d", unfittable.MaxBox.Length, unfittable.MaxBox.Width, unfittable.MaxBox.Height),
			},
			err,
		)
		return
	}

	metrics.RecordBoxPacking(duration, "error", itemCount, 0)
	builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeyPackingFailed, err)
}
