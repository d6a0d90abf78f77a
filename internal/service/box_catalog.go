package service

import (
	"context"
	"errors"

	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/packlane/box-picker/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// BoxCatalogService provides box catalog operations.
type BoxCatalogService interface {
	GetActive(ctx context.Context) (*repository.BoxCatalogConfig, error)
	Create(ctx context.Context, boxes []repository.BoxSpec, createdBy string) (*repository.BoxCatalogConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, boxes []repository.BoxSpec, updatedBy string) (*repository.BoxCatalogConfig, error)
	List(ctx context.Context, limit int) ([]repository.BoxCatalogConfig, error)
}

// BoxCatalogServiceImpl implements BoxCatalogService.
type BoxCatalogServiceImpl struct {
	catalogRepo repository.BoxCatalogRepositoryInterface
}

// NewBoxCatalogService creates a new box catalog service.
func NewBoxCatalogService(catalogRepo repository.BoxCatalogRepositoryInterface) BoxCatalogService {
	if catalogRepo == nil {
		return &BoxCatalogServiceImpl{}
	}
	return &BoxCatalogServiceImpl{
		catalogRepo: catalogRepo,
	}
}

func (s *BoxCatalogServiceImpl) GetActive(ctx context.Context) (*repository.BoxCatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.GetActive(ctx)
}

func (s *BoxCatalogServiceImpl) Create(ctx context.Context, boxes []repository.BoxSpec, createdBy string) (*repository.BoxCatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.Create(ctx, boxes, createdBy)
}

func (s *BoxCatalogServiceImpl) Update(ctx context.Context, id primitive.ObjectID, boxes []repository.BoxSpec, updatedBy string) (*repository.BoxCatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.Update(ctx, id, boxes, updatedBy)
}

func (s *BoxCatalogServiceImpl) List(ctx context.Context, limit int) ([]repository.BoxCatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.List(ctx, limit)
}

// CatalogFromConfig converts a persisted catalog document into a domain
// catalog, restoring the ascending (volume, length, width, height) order.
func CatalogFromConfig(config *repository.BoxCatalogConfig) model.Catalog {
	if config == nil || len(config.Boxes) == 0 {
		return nil
	}
	boxes := make([]model.Box, len(config.Boxes))
	for i, b := range config.Boxes {
		boxes[i] = model.Box{
			ID:     b.BoxID,
			Length: b.Length,
			Width:  b.Width,
			Height: b.Height,
		}
	}
	return model.NewCatalog(boxes)
}
