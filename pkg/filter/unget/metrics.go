package unget

import (
	"github.com/fisherro/streams/pkg/metrics"
	"github.com/fisherro/streams/pkg/stream"
)

// MetricsSource wraps a pushback Source with Prometheus metrics collection.
type MetricsSource struct {
	source   *Source
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a pushback source with metrics enabled on the
// default registry.
func NewWithMetrics(src stream.Source, name string) *MetricsSource {
	return NewWithConfigAndMetrics(src, name, metrics.Config{Enabled: true})
}

// NewWithConfigAndMetrics creates a pushback source with custom metrics
// configuration.
func NewWithConfigAndMetrics(src stream.Source, name string, metricsConfig metrics.Config) *MetricsSource {
	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		// Create custom registry if provided
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	return &MetricsSource{
		source:   New(src),
		name:     name,
		registry: registry,
		enabled:  metricsConfig.Enabled,
	}
}

// Unget pushes the bytes of p onto the pushback stack.
func (ms *MetricsSource) Unget(p []byte) {
	if ms.enabled {
		ms.registry.UngetBytes.WithLabelValues(ms.name).Add(float64(len(p)))
	}

	ms.source.Unget(p)
}

// Read serves pushed-back bytes first, then upstream data.
func (ms *MetricsSource) Read(p []byte) (int, error) {
	n, err := ms.source.Read(p)

	if ms.enabled {
		ms.registry.SourceReads.WithLabelValues(ms.name).Inc()
		ms.registry.SourceBytesRead.WithLabelValues(ms.name).Add(float64(n))

		if err != nil {
			ms.registry.SourceErrors.WithLabelValues("read", ms.name).Inc()
		} else if n < len(p) {
			ms.registry.SourceExhaustions.WithLabelValues(ms.name).Inc()
		}
	}

	return n, err
}

// Pending returns the number of pushed-back bytes not yet re-read.
func (ms *MetricsSource) Pending() int {
	return ms.source.Pending()
}

// EnableMetrics enables metrics collection.
func (ms *MetricsSource) EnableMetrics(config metrics.Config) error {
	ms.enabled = config.Enabled

	if config.Registry != nil {
		ms.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (ms *MetricsSource) DisableMetrics() {
	ms.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (ms *MetricsSource) MetricsEnabled() bool {
	return ms.enabled
}
