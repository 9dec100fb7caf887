// Package metrics provides Prometheus instrumentation for goasync components.
//
// This package enables monitoring and observability for goasync's queue
// engines, periodic timers, and resource pools through Prometheus metrics.
//
// # Overview
//
// The metrics package provides automatic instrumentation for:
//   - Workers and pools (consumer count, queue depth, enqueued/processed/failed items)
//   - Processor callback latency (histogram)
//   - Periodic timers (invocations, recovered failures)
//   - Resource pools (size, checkouts, misses, checkins, capacity rejects)
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	// Worker pool with metrics
//	pool := worker.NewPoolWithMetrics(5, "ingest_pool", process)
//
//	// Periodic timer with metrics
//	timer, _ := periodic.NewWithMetrics(flush, time.Minute, "flusher")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
package metrics
