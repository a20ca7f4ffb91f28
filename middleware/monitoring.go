package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path", "status"},
	)

	catalogOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_operations_total",
			Help: "Total number of catalog operations (browse, quote, categories)",
		},
		[]string{"operation", "status"},
	)

	unknownSortKeys = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_unknown_sort_key_total",
			Help: "Browse requests whose sort key was not recognised",
		},
	)

	catalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_cache_lookups_total",
			Help: "Catalog snapshot cache lookups",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware records request counts and latencies per route.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
	}
}

func RecordCatalogOperation(operation string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	catalogOperations.WithLabelValues(operation, status).Inc()
}

func RecordUnknownSortKey() {
	unknownSortKeys.Inc()
}

func RecordCacheLookup(hit bool) {
	result := "hit"
	if !hit {
		result = "miss"
	}
	catalogCacheLookups.WithLabelValues(result).Inc()
}
