// Package app provides router configuration.
package app

import (
	"context"

	"github.com/packlane/box-picker/config"
	"github.com/packlane/box-picker/internal/http"
	"github.com/packlane/box-picker/internal/repository"
	"github.com/packlane/box-picker/internal/service"
)

// mongoChecker adapts the MongoDB ping to the health checker interface.
type mongoChecker struct {
	db *repository.MongoDB
}

func (m mongoChecker) Check() error {
	return m.db.HealthCheck(context.Background())
}

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	packer service.BoxPacker,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var catalogRepo repository.BoxCatalogRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		catalogRepo = dbComponents.BoxCatalogRepo
		loggingService = dbComponents.LoggingService
	}

	// Initialize box catalog service
	var catalogService service.BoxCatalogService
	if catalogRepo != nil {
		catalogService = service.NewBoxCatalogService(catalogRepo)
	}

	handler := http.NewHandler(packer, catalogService)
	healthHandler := http.NewHealthHandler()

	// Readiness pings the store and watches the breaker states.
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", mongoChecker{db: dbComponents.DB})
		}
		if dbComponents.BoxCatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_box_catalogs", dbComponents.BoxCatalogCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		APIKeys:           cfg.Auth.APIKeys,
		APIKeyHashes:      cfg.Auth.APIKeyHashes,
		JWTSecret:         cfg.Auth.JWTSecretKey,
		EnableIdempotency: cfg.Server.EnableIdempotency,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		BoxCatalogService: catalogService,
		Packer:            packer,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
