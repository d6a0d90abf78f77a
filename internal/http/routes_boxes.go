package http

import (
	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/middleware"
	"github.com/packlane/box-picker/internal/service"
)

// BoxRoutes handles packing and box catalog route registration.
type BoxRoutes struct {
	handler        *Handler
	catalogHandler *BoxCatalogHandler
}

// NewBoxRoutes creates a new BoxRoutes instance.
func NewBoxRoutes(packer service.BoxPacker, catalogService service.BoxCatalogService) *BoxRoutes {
	handler := NewHandler(packer, catalogService)

	var catalogHandler *BoxCatalogHandler
	if catalogService != nil {
		catalogHandler = NewBoxCatalogHandler(catalogService, packer)
	}

	return &BoxRoutes{
		handler:        handler,
		catalogHandler: catalogHandler,
	}
}

// RegisterRoutes registers packing and catalog routes. The packing endpoint
// and catalog reads are always open; the catalog mutation is guarded by JWT
// when a signing secret is configured.
func (r *BoxRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.POST("/pack", r.handler.PackItems)

	if r.catalogHandler == nil {
		return
	}

	rg.GET("/boxes", r.catalogHandler.GetActiveBoxCatalog)
	rg.GET("/boxes/history", r.catalogHandler.ListBoxCatalogs)

	if cfg != nil && cfg.JWTSecret != "" {
		rg.PUT("/boxes", middleware.JWTAuth(cfg.JWTSecret), r.catalogHandler.UpdateBoxCatalog)
	} else {
		rg.PUT("/boxes", r.catalogHandler.UpdateBoxCatalog)
	}
}

// GetHandler returns the underlying packing handler.
func (r *BoxRoutes) GetHandler() *Handler {
	return r.handler
}
