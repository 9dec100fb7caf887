package worker

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/goasync/pkg/metrics"
)

// MetricsPool wraps a Pool with Prometheus metrics collection.
type MetricsPool[T any] struct {
	pool     Pool[T]
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewPoolWithMetrics creates a new pool with metrics enabled.
func NewPoolWithMetrics[T any](workers int, name string, proc Processor[T]) Pool[T] {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(Config[T]{
		Workers:   workers,
		Processor: proc,
	}, name, config)
}

// NewWithConfigAndMetrics creates a new pool with custom config and metrics.
func NewWithConfigAndMetrics[T any](config Config[T], name string, metricsConfig metrics.Config) Pool[T] {
	if !metricsConfig.Enabled {
		return NewWithConfig(config)
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	// Wrap the processor to observe latency and outcomes
	base := config.Processor
	if base != nil {
		config.Processor = func(item T) error {
			start := time.Now()
			err := base(item)
			registry.ProcessingDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
			if err != nil {
				registry.ItemsFailed.WithLabelValues(name).Inc()
			} else {
				registry.ItemsProcessed.WithLabelValues(name).Inc()
			}
			return err
		}
	}

	mp := &MetricsPool[T]{
		pool:     NewWithConfig(config),
		name:     name,
		registry: registry,
		enabled:  true,
	}

	mp.updateMetrics()

	return mp
}

// updateMetrics updates the current state gauges.
func (mp *MetricsPool[T]) updateMetrics() {
	if !mp.enabled {
		return
	}

	stats := mp.pool.Stats()
	mp.registry.WorkerCount.WithLabelValues(mp.name).Set(float64(stats.Workers))
	mp.registry.QueueDepth.WithLabelValues(mp.name).Set(float64(stats.QueueDepth))
}

// Enqueue hands item to the pool and records it.
func (mp *MetricsPool[T]) Enqueue(item T) {
	mp.pool.Enqueue(item)

	if mp.enabled {
		mp.registry.ItemsEnqueued.WithLabelValues(mp.name).Inc()
		mp.updateMetrics()
	}
}

// Stats returns a best-effort snapshot of the internal counters.
func (mp *MetricsPool[T]) Stats() Stats {
	stats := mp.pool.Stats()

	if mp.enabled {
		mp.registry.QueueDepth.WithLabelValues(mp.name).Set(float64(stats.QueueDepth))
	}

	return stats
}

// Size returns the number of consumer goroutines.
func (mp *MetricsPool[T]) Size() int {
	return mp.pool.Size()
}

// Shutdown initiates graceful shutdown of the underlying pool.
func (mp *MetricsPool[T]) Shutdown() <-chan struct{} {
	return mp.pool.Shutdown()
}

// EnableMetrics enables metrics collection.
func (mp *MetricsPool[T]) EnableMetrics(config metrics.Config) error {
	mp.enabled = config.Enabled

	if config.Registry != nil {
		mp.registry = metrics.NewRegistry(config.Registry)
	}

	if mp.enabled {
		mp.updateMetrics()
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (mp *MetricsPool[T]) DisableMetrics() {
	mp.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mp *MetricsPool[T]) MetricsEnabled() bool {
	return mp.enabled
}
