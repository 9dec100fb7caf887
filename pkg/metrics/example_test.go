package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Example_basicUsage demonstrates basic metrics configuration.
func Example_basicUsage() {
	// Create a separate registry for this test
	testRegistry := prometheus.NewRegistry()
	registry := NewRegistry(testRegistry)

	// Example of accessing metrics
	registry.ItemsEnqueued.WithLabelValues("ingest_pool").Add(10)
	registry.ItemsProcessed.WithLabelValues("ingest_pool").Add(8)
	registry.ItemsFailed.WithLabelValues("ingest_pool").Add(2)

	fmt.Println("Metrics updated successfully")

	// Output:
	// Metrics updated successfully
}

// Example_customRegistry demonstrates using a custom Prometheus registry.
func Example_customRegistry() {
	// Create a custom registry
	customRegistry := prometheus.NewRegistry()

	config := Config{
		Enabled:  true,
		Registry: customRegistry,
	}

	// Create metrics registry with custom config
	registry := NewRegistry(config.Registry)

	registry.ResourcePoolSize.WithLabelValues("db_connections").Set(4)
	registry.Checkouts.WithLabelValues("db_connections").Add(12)
	registry.CheckoutMisses.WithLabelValues("db_connections").Add(1)

	fmt.Println("Custom registry metrics recorded")

	// Output:
	// Custom registry metrics recorded
}
