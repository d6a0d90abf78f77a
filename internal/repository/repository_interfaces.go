// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BoxCatalogRepositoryInterface defines the interface for box catalog repository operations.
type BoxCatalogRepositoryInterface interface {
	GetActive(ctx context.Context) (*BoxCatalogConfig, error)
	Create(ctx context.Context, boxes []BoxSpec, createdBy string) (*BoxCatalogConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, boxes []BoxSpec, updatedBy string) (*BoxCatalogConfig, error)
	List(ctx context.Context, limit int) ([]BoxCatalogConfig, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
