// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/packlane/box-picker/config"
	"github.com/packlane/box-picker/internal/circuitbreaker"
	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/packlane/box-picker/internal/repository"
	"github.com/packlane/box-picker/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                       *repository.MongoDB
	BoxCatalogRepo           repository.BoxCatalogRepositoryInterface
	LoggingService           service.LoggingService
	BoxCatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker       *circuitbreaker.CircuitBreaker
}

func newBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
	})
}

// InitializeDatabase connects to MongoDB and wires the catalog and logs
// repositories behind circuit breakers. Returns nil when the database is
// disabled or unreachable; the service then runs on the compiled-in catalog.
func InitializeDatabase(cfg config.DatabaseConfig, defaultCatalog model.Catalog) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}
	log.Info().Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	catalogCB := newBreaker(cfg, "mongodb-box-catalogs")
	logsCB := newBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	catalogRepo := repository.NewBoxCatalogRepositoryWithCircuitBreaker(repository.NewBoxCatalogRepository(db), catalogCB)

	if err := seedCatalog(catalogRepo, defaultCatalog); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default box catalog")
	}

	return &DatabaseComponents{
		DB:                       db,
		BoxCatalogRepo:           catalogRepo,
		LoggingService:           service.NewLoggingService(logsRepo),
		BoxCatalogCircuitBreaker: catalogCB,
		LogsCircuitBreaker:       logsCB,
	}
}

// seedCatalog writes an initial box catalog when the store has none.
// An empty catalog argument falls back to the compiled-in default boxes.
func seedCatalog(repo repository.BoxCatalogRepositoryInterface, catalog model.Catalog) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}
	if active != nil {
		return nil
	}

	if len(catalog) == 0 {
		catalog = model.DefaultCatalog
	}
	boxes := make([]repository.BoxSpec, len(catalog))
	for i, b := range catalog {
		boxes[i] = repository.BoxSpec{
			BoxID:  b.ID,
			Length: b.Length,
			Width:  b.Width,
			Height: b.Height,
		}
	}

	if _, err := repo.Create(ctx, boxes, "system"); err != nil {
		return err
	}
	log.Info().Int("boxes", len(boxes)).Msg("Created default box catalog")
	return nil
}
