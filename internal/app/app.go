// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/config"
	"github.com/packlane/box-picker/internal/http"
	"github.com/packlane/box-picker/internal/middleware"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize business services
	serviceComponents := InitializeServices(cfg.Cache)

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database, cfg.Cache.Catalog)

	// Request logs are persisted through a worker pool rather than a
	// goroutine per request.
	if dbComponents != nil && dbComponents.LoggingService != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents.Packer, dbComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}

// ShutdownApp flushes background workers started by InitializeApp.
// Call it after the HTTP server has drained.
func ShutdownApp() {
	middleware.StopAsyncLogger()
}
