// Package metrics provides Prometheus instrumentation for goasync components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for goasync components.
type Registry struct {
	// Worker / Pool Metrics
	WorkerCount        *prometheus.GaugeVec
	QueueDepth         *prometheus.GaugeVec
	ItemsEnqueued      *prometheus.CounterVec
	ItemsProcessed     *prometheus.CounterVec
	ItemsFailed        *prometheus.CounterVec
	ProcessingDuration *prometheus.HistogramVec

	// Periodic Timer Metrics
	TimerInvocations *prometheus.CounterVec
	TimerFailures    *prometheus.CounterVec

	// Resource Pool Metrics
	ResourcePoolSize *prometheus.GaugeVec
	Checkouts        *prometheus.CounterVec
	CheckoutMisses   *prometheus.CounterVec
	Checkins         *prometheus.CounterVec
	CheckinRejects   *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by goasync components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		WorkerCount: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goasync",
				Subsystem: "worker",
				Name:      "count",
				Help:      "Number of consumer goroutines in the worker or pool",
			},
			[]string{"pool_name"},
		),

		QueueDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goasync",
				Subsystem: "worker",
				Name:      "queue_depth",
				Help:      "Number of items currently queued and not yet claimed",
			},
			[]string{"pool_name"},
		),

		ItemsEnqueued: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goasync",
				Subsystem: "worker",
				Name:      "items_enqueued_total",
				Help:      "Total number of items enqueued",
			},
			[]string{"pool_name"},
		),

		ItemsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goasync",
				Subsystem: "worker",
				Name:      "items_processed_total",
				Help:      "Total number of items processed successfully",
			},
			[]string{"pool_name"},
		),

		ItemsFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goasync",
				Subsystem: "worker",
				Name:      "items_failed_total",
				Help:      "Total number of items whose processor returned an error or panicked",
			},
			[]string{"pool_name"},
		),

		ProcessingDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "goasync",
				Subsystem: "worker",
				Name:      "processing_duration_seconds",
				Help:      "Time spent inside the processor callback",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pool_name"},
		),

		TimerInvocations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goasync",
				Subsystem: "periodic",
				Name:      "invocations_total",
				Help:      "Total number of periodic callback invocations",
			},
			[]string{"timer_name"},
		),

		TimerFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goasync",
				Subsystem: "periodic",
				Name:      "failures_total",
				Help:      "Total number of periodic callback panics recovered",
			},
			[]string{"timer_name"},
		),

		ResourcePoolSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goasync",
				Subsystem: "resourcepool",
				Name:      "size",
				Help:      "Number of resources currently checked in",
			},
			[]string{"pool_name"},
		),

		Checkouts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goasync",
				Subsystem: "resourcepool",
				Name:      "checkouts_total",
				Help:      "Total number of successful checkouts",
			},
			[]string{"pool_name"},
		),

		CheckoutMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goasync",
				Subsystem: "resourcepool",
				Name:      "checkout_misses_total",
				Help:      "Total number of checkouts that failed on an empty pool",
			},
			[]string{"pool_name"},
		),

		Checkins: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goasync",
				Subsystem: "resourcepool",
				Name:      "checkins_total",
				Help:      "Total number of successful checkins",
			},
			[]string{"pool_name"},
		),

		CheckinRejects: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goasync",
				Subsystem: "resourcepool",
				Name:      "checkin_rejects_total",
				Help:      "Total number of checkins rejected by a capacity bound",
			},
			[]string{"pool_name"},
		),
	}
}
