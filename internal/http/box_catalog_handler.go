package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/domain/dto"
	"github.com/packlane/box-picker/internal/middleware"
	"github.com/packlane/box-picker/internal/repository"
	"github.com/packlane/box-picker/internal/service"
)

// BoxCatalogHandler provides HTTP handlers for box catalog routes.
type BoxCatalogHandler struct {
	catalogService service.BoxCatalogService
	packer         service.BoxPacker
}

// NewBoxCatalogHandler creates a new BoxCatalogHandler instance.
func NewBoxCatalogHandler(catalogService service.BoxCatalogService, packer service.BoxPacker) *BoxCatalogHandler {
	return &BoxCatalogHandler{
		catalogService: catalogService,
		packer:         packer,
	}
}

// GetActiveBoxCatalog handles GET /api/boxes requests.
//
// @Summary      Get active box catalog
// @Description  Returns the currently active box catalog configuration
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active box catalog"
// @Failure      404 {object} dto.ErrorResponse "No active box catalog found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/boxes [get]
func (h *BoxCatalogHandler) GetActiveBoxCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	config, err := h.catalogService.GetActive(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	if config == nil {
		builder.Error(http.StatusNotFound, dto.ErrCodeNotFound, nil)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"boxes":      config.Boxes,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// UpdateBoxCatalog handles PUT /api/boxes requests.
//
// @Summary      Update box catalog
// @Description  Replaces the active box catalog configuration
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        request body dto.UpdateBoxCatalogRequest true "Box catalog configuration"
// @Success      200 {object} dto.SuccessResponse "Updated box catalog"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes [put]
func (h *BoxCatalogHandler) UpdateBoxCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateBoxCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	boxes := make([]repository.BoxSpec, len(req.Boxes))
	for i, b := range req.Boxes {
		boxes[i] = repository.BoxSpec{
			BoxID:  b.BoxID,
			Length: b.Dimensions.Length,
			Width:  b.Dimensions.Width,
			Height: b.Dimensions.Height,
		}
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = middleware.GetSubject(c)
	}

	config, err := h.catalogService.Create(c.Request.Context(), boxes, createdBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	// Stale packing results must not survive a catalog change.
	if h.packer != nil {
		h.packer.InvalidateCache()
	}

	if ls, ok := loggingServiceFrom(c); ok {
		middleware.AuditLog(ls, c, "update_box_catalog", "Box catalog updated", map[string]interface{}{
			"boxes":   len(req.Boxes),
			"version": config.Version,
		})
	}

	builder.SuccessOK(map[string]interface{}{
		"boxes":      config.Boxes,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// ListBoxCatalogs handles GET /api/boxes/history requests.
//
// @Summary      List box catalog history
// @Description  Returns all box catalog configurations (history)
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Box catalog history"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/boxes/history [get]
func (h *BoxCatalogHandler) ListBoxCatalogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.catalogService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	builder.SuccessOK(configs)
}
