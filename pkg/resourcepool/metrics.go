package resourcepool

import (
	goerrors "errors"

	"github.com/vnykmshr/goasync/pkg/common/errors"
	"github.com/vnykmshr/goasync/pkg/metrics"
)

// InstrumentedPool wraps a Pool with Prometheus metrics collection.
type InstrumentedPool[T any] struct {
	pool     *Pool[T]
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates an instrumented unbounded pool reporting under name.
func NewWithMetrics[T any](name string, config metrics.Config) *InstrumentedPool[T] {
	return instrument(New[T](), name, config)
}

// NewWithCapacityAndMetrics creates an instrumented bounded pool reporting
// under name.
func NewWithCapacityAndMetrics[T any](maxCapacity int, name string, config metrics.Config) (*InstrumentedPool[T], error) {
	p, err := NewWithCapacity[T](maxCapacity)
	if err != nil {
		return nil, err
	}
	return instrument(p, name, config), nil
}

func instrument[T any](p *Pool[T], name string, config metrics.Config) *InstrumentedPool[T] {
	registry := metrics.DefaultRegistry
	if config.Registry != nil {
		registry = metrics.NewRegistry(config.Registry)
	}

	return &InstrumentedPool[T]{
		pool:     p,
		name:     name,
		registry: registry,
		enabled:  config.Enabled,
	}
}

// Checkout removes and returns the front resource, recording the outcome.
func (ip *InstrumentedPool[T]) Checkout() (T, error) {
	item, err := ip.pool.Checkout()
	if ip.enabled {
		if err != nil {
			ip.registry.CheckoutMisses.WithLabelValues(ip.name).Inc()
		} else {
			ip.registry.Checkouts.WithLabelValues(ip.name).Inc()
		}
		ip.registry.ResourcePoolSize.WithLabelValues(ip.name).Set(float64(ip.pool.Size()))
	}
	return item, err
}

// Checkin returns a resource to the pool, recording the outcome.
func (ip *InstrumentedPool[T]) Checkin(item T) error {
	err := ip.pool.Checkin(item)
	if ip.enabled {
		if err != nil {
			ip.registry.CheckinRejects.WithLabelValues(ip.name).Inc()
		} else {
			ip.registry.Checkins.WithLabelValues(ip.name).Inc()
		}
		ip.registry.ResourcePoolSize.WithLabelValues(ip.name).Set(float64(ip.pool.Size()))
	}
	return err
}

// CheckoutOrNew checks out the front resource, invoking factory to build a
// fresh one when the pool is empty. The empty-pool path counts as a miss.
func (ip *InstrumentedPool[T]) CheckoutOrNew(factory func() (T, error)) (T, error) {
	item, err := ip.Checkout()
	if goerrors.Is(err, errors.ErrEmptyPool) {
		return factory()
	}
	return item, err
}

// Size returns the number of resources currently checked in.
func (ip *InstrumentedPool[T]) Size() int {
	return ip.pool.Size()
}

// Stats returns a consistent snapshot of the underlying pool's counters.
func (ip *InstrumentedPool[T]) Stats() Stats {
	return ip.pool.Stats()
}

// EnableMetrics enables metrics collection.
func (ip *InstrumentedPool[T]) EnableMetrics(config metrics.Config) error {
	ip.enabled = config.Enabled

	if config.Registry != nil {
		ip.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (ip *InstrumentedPool[T]) DisableMetrics() {
	ip.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (ip *InstrumentedPool[T]) MetricsEnabled() bool {
	return ip.enabled
}
