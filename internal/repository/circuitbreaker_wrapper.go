// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/packlane/box-picker/internal/circuitbreaker"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// execute runs fn through the circuit breaker and carries its result out.
func execute[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var fnErr error
		result, fnErr = fn()
		return fnErr
	})
	return result, err
}

// BoxCatalogRepositoryWithCircuitBreaker guards catalog reads and writes so a
// failing MongoDB cannot stall request handling.
type BoxCatalogRepositoryWithCircuitBreaker struct {
	repo           *BoxCatalogRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewBoxCatalogRepositoryWithCircuitBreaker wraps repo with the given breaker.
func NewBoxCatalogRepositoryWithCircuitBreaker(repo *BoxCatalogRepository, cb *circuitbreaker.CircuitBreaker) *BoxCatalogRepositoryWithCircuitBreaker {
	return &BoxCatalogRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// GetActive returns the active box catalog. When the circuit is open it
// returns nil so callers fall back to the compiled-in default catalog.
func (r *BoxCatalogRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*BoxCatalogConfig, error) {
	result, err := execute(ctx, r.circuitBreaker, func() (*BoxCatalogConfig, error) {
		return r.repo.GetActive(ctx)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Create stores a new box catalog configuration.
func (r *BoxCatalogRepositoryWithCircuitBreaker) Create(ctx context.Context, boxes []BoxSpec, createdBy string) (*BoxCatalogConfig, error) {
	return execute(ctx, r.circuitBreaker, func() (*BoxCatalogConfig, error) {
		return r.repo.Create(ctx, boxes, createdBy)
	})
}

// Update replaces the boxes of an existing catalog configuration.
func (r *BoxCatalogRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, boxes []BoxSpec, updatedBy string) (*BoxCatalogConfig, error) {
	return execute(ctx, r.circuitBreaker, func() (*BoxCatalogConfig, error) {
		return r.repo.Update(ctx, id, boxes, updatedBy)
	})
}

// List returns catalog configurations, newest first.
func (r *BoxCatalogRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]BoxCatalogConfig, error) {
	return execute(ctx, r.circuitBreaker, func() ([]BoxCatalogConfig, error) {
		return r.repo.List(ctx, limit)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *BoxCatalogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker guards log persistence. Log writes are
// non-critical, so an open circuit drops entries instead of failing requests.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo with the given breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores a single log entry, dropping it when the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores a batch of entries, dropping it when the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries matching the query options.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	return execute(ctx, r.circuitBreaker, func() ([]*LogEntryDocument, error) {
		return r.repo.Query(ctx, opts)
	})
}

// Count returns the count of log entries matching the query options.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return execute(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
