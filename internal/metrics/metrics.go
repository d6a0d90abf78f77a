// Package metrics provides Prometheus metrics collection for the box picker service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// BoxPackingsTotal tracks total box packing computations.
	BoxPackingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "box_packings_total",
			Help: "Total number of box packing computations",
		},
		[]string{"status"},
	)

	// BoxPackingDuration tracks box packing computation duration.
	BoxPackingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "box_packing_duration_seconds",
			Help:    "Box packing computation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// ItemsPerRequest tracks the number of items in each packing request.
	ItemsPerRequest = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "box_packing_items_per_request",
			Help:    "Number of items per packing request",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// BoxesPerResult tracks the number of boxes in each packing result.
	BoxesPerResult = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "box_packing_boxes_per_result",
			Help:    "Number of boxes per packing result",
			Buckets: []float64{1, 2, 3, 5, 10, 20, 50},
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
// The path label uses the route template so parameterized routes do not
// explode the label cardinality.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		labels := []string{c.Request.Method, path, strconv.Itoa(c.Writer.Status())}
		HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(labels...).Inc()
	}
}

// RecordBoxPacking records metrics for a box packing computation.
func RecordBoxPacking(duration time.Duration, status string, items, boxes int) {
	BoxPackingDuration.Observe(duration.Seconds())
	BoxPackingsTotal.WithLabelValues(status).Inc()
	ItemsPerRequest.Observe(float64(items))
	if boxes > 0 {
		BoxesPerResult.Observe(float64(boxes))
	}
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
