package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/metrics"
	"github.com/packlane/box-picker/internal/middleware"
	"github.com/packlane/box-picker/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	APIKeys           map[string]bool
	APIKeyHashes      []string
	JWTSecret         string
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LoggingService    service.LoggingService
	BoxCatalogService service.BoxCatalogService
	Packer            service.BoxPacker
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
	}
}

// NewRouter creates and configures the Gin router for the box picker service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(globalChain(&cfg)...)

	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	applyAPIProtection(api, &cfg)
	if handler != nil {
		NewBoxRoutes(handler.packer, cfg.BoxCatalogService).RegisterRoutes(api, &cfg)
	}

	return router
}

// globalChain builds the middleware stack applied to every route, ordered so
// each layer sees the request ID and runs inside recovery.
func globalChain(cfg *RouterConfig) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	}

	// Downstream middleware reads the logging service from the context.
	chain = append(chain, func(c *gin.Context) {
		c.Set("logging_service", cfg.LoggingService)
		c.Next()
	})

	if cfg.RequestTimeout > 0 {
		chain = append(chain, middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		chain = append(chain, limiter.RateLimit())
	}
	return chain
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		docs := router.Group("/swagger", gin.BasicAuth(gin.Accounts{cfg.SwaggerUser: cfg.SwaggerPass}))
		docs.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// applyAPIProtection adds idempotency and API key auth to the /api group.
func applyAPIProtection(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.EnableIdempotency {
		api.Use(middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
	if len(cfg.APIKeys) > 0 || len(cfg.APIKeyHashes) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys, cfg.APIKeyHashes))
	}
}
