// Package metrics collects Prometheus metrics for the HTTP surface, the
// dispatched operations, and the worker pools. Instrumentation stays at
// the dispatcher and middleware boundaries; business logic never touches
// this package.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/loudent/library/pkg/pool"
)

// Operation results used as the "result" label value.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultTimeout = "timeout"
)

var (
	initialized bool

	// HTTPRequestsTotal counts requests by method, path and status.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes request latency by method and path.
	HTTPRequestDuration *prometheus.HistogramVec

	// OperationDuration observes dispatched operation latency by
	// operation name and result. This is the timing wrapper applied
	// around every operation at the dispatcher boundary.
	OperationDuration *prometheus.HistogramVec

	// OperationsTotal counts dispatched operations by name and result.
	OperationsTotal *prometheus.CounterVec

	// BatchItemsTotal counts per-item batch outcomes by operation and note.
	BatchItemsTotal *prometheus.CounterVec
)

// Init registers all metrics with the default registry. Call once at
// startup; repeated calls are no-ops so tests can share a process.
func Init() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_http_requests_total",
			Help: "Total HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "library_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "library_operation_duration_seconds",
			Help:    "Dispatched operation latency.",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"operation", "result"},
	)

	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_operations_total",
			Help: "Total dispatched operations.",
		},
		[]string{"operation", "result"},
	)

	BatchItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_batch_items_total",
			Help: "Per-item batch outcomes.",
		},
		[]string{"operation", "note"},
	)
}

// ObserveOperation records one dispatched operation.
func ObserveOperation(operation, result string, elapsed time.Duration) {
	if !initialized {
		return
	}
	OperationDuration.WithLabelValues(operation, result).Observe(elapsed.Seconds())
	OperationsTotal.WithLabelValues(operation, result).Inc()
}

// ObserveBatchItem records one per-item batch outcome.
func ObserveBatchItem(operation, note string) {
	if !initialized {
		return
	}
	BatchItemsTotal.WithLabelValues(operation, note).Inc()
}

// WatchPool exports the queue depth of a worker pool as a gauge.
func WatchPool(p *pool.Pool) {
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name:        "library_pool_queue_depth",
			Help:        "Tasks waiting in the worker pool queue.",
			ConstLabels: prometheus.Labels{"pool": p.Name()},
		},
		func() float64 { return float64(p.QueueDepth()) },
	)
}
