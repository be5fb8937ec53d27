// Package metrics provides Prometheus instrumentation for stream components.
//
// This package enables monitoring and observability for sinks, sources, and
// the filters stacked over them through Prometheus metrics.
//
// # Overview
//
// The metrics package provides automatic instrumentation for:
//   - Sink traffic (write calls, bytes accepted, flushes, failures)
//   - Source traffic (read calls, bytes produced, exhaustions, failures)
//   - Pushback (bytes returned to a source)
//   - Buffer state (usage and capacity of buffering filters)
//   - File rotation events
//
// # Quick Start
//
// Enable metrics by wrapping streams with the metered filter:
//
//	f, _ := filestream.Create("out.dat")
//	sink := metered.NewSink(f, "output_file")
//
//	src := metered.NewSource(memstream.NewSource(data), "input")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	sink := metered.NewSinkWithConfig(f, "output_file", config)
//
// # Available Metrics
//
// ## Sink Metrics
//
//   - streams_sink_writes_total: Total number of sink write calls
//   - streams_sink_bytes_written_total: Total bytes accepted by sinks
//   - streams_sink_flushes_total: Total number of sink flushes
//   - streams_sink_errors_total: Total number of sink failures
//
// ## Source Metrics
//
//   - streams_source_reads_total: Total number of source read calls
//   - streams_source_bytes_read_total: Total bytes produced by sources
//   - streams_source_exhaustions_total: Total short fills signaling exhaustion
//   - streams_source_errors_total: Total number of source failures
//   - streams_source_unget_bytes_total: Total bytes pushed back onto sources
//
// ## Buffer Metrics
//
//   - streams_buffer_usage_bytes: Bytes currently held in a stream buffer
//   - streams_buffer_capacity_bytes: Stream buffer capacity
//
// ## Rotation Metrics
//
//   - streams_rotate_rotations_total: Total number of file rotations
//
// # Labels
//
// Metrics include relevant labels for filtering and aggregation:
//
//   - sink_name: User-provided name for the sink instance
//   - source_name: User-provided name for the source instance
//   - stream_name: User-provided name for buffer gauges
//   - operation: Failing operation ("write", "flush", "read", "seek")
//
// # Runtime Control
//
// Streams wrapped by the metered filter implement the Instrumentable
// interface and support runtime control:
//
//	sink := metered.NewSink(f, "output")
//	sink.DisableMetrics()           // Stop collecting metrics
//	sink.EnableMetrics(config)      // Re-enable with new config
//	enabled := sink.MetricsEnabled() // Check current state
//
// # Performance
//
// Metrics collection is designed for minimal overhead:
//   - Metrics are updated only when operations occur
//   - No background goroutines or timers
//   - Conditional metrics updates based on enabled state
//
// # Examples
//
// See the example tests for usage patterns:
//   - Example_customRegistry: Using custom Prometheus registries
//   - Example_metricsServer: Setting up HTTP metrics endpoint
package metrics
