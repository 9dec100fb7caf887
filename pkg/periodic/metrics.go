package periodic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/goasync/pkg/metrics"
)

// NewWithMetrics creates a fixed-period timer that records invocations
// and recovered failures to a dedicated Prometheus registry.
func NewWithMetrics(fn func(), period time.Duration, name string) (Timer, error) {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}
	return NewWithMetricsConfig(fn, period, name, config)
}

// NewWithMetricsConfig creates a fixed-period timer with custom metrics configuration.
func NewWithMetricsConfig(fn func(), period time.Duration, name string, metricsConfig metrics.Config) (Timer, error) {
	if !metricsConfig.Enabled {
		return New(fn, period, WithName(name))
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	wrapped := func() {
		fn()
		registry.TimerInvocations.WithLabelValues(name).Inc()
	}

	return New(wrapped, period,
		WithName(name),
		WithOnError(func(error) {
			registry.TimerFailures.WithLabelValues(name).Inc()
		}),
	)
}
