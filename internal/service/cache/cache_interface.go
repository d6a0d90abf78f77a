package cache

import "github.com/packlane/box-picker/internal/domain/model"

// Cache defines the interface for packing result cache operations.
// Keys are item-list fingerprints produced by the packer.
type Cache interface {
	Get(key string) (model.PackingResult, bool)
	Set(key string, value model.PackingResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
