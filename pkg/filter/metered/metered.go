// Package metered provides Prometheus instrumentation filters. A metered
// sink or source wraps any stream, counts its traffic under a caller-given
// name, and otherwise behaves exactly like the stream it wraps.
//
// Metering hides optional capabilities: a metered sink over a seekable file
// does not itself implement stream.Seeker. Use Unwrap to reach the wrapped
// stream when a capability is needed.
package metered

import (
	"github.com/fisherro/streams/pkg/metrics"
	"github.com/fisherro/streams/pkg/stream"
)

// bufferStater is implemented by buffering streams that report their fill
// level. The buffer gauges update only when the wrapped stream has one.
type bufferStater interface {
	Buffered() int
	Capacity() int
}

// Sink wraps a stream.Sink with Prometheus metrics collection.
type Sink struct {
	sink     stream.Sink
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewSink creates a metered sink counting on the default registry.
func NewSink(s stream.Sink, name string) *Sink {
	return NewSinkWithConfig(s, name, metrics.Config{Enabled: true})
}

// NewSinkWithConfig creates a metered sink with custom metrics configuration.
func NewSinkWithConfig(s stream.Sink, name string, metricsConfig metrics.Config) *Sink {
	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		// Create custom registry if provided
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	ms := &Sink{
		sink:     s,
		name:     name,
		registry: registry,
		enabled:  metricsConfig.Enabled,
	}
	ms.publishBufferState()
	return ms
}

// Write forwards to the wrapped sink and counts the call, the bytes it
// accepted, and any failure.
func (ms *Sink) Write(p []byte) (int, error) {
	n, err := ms.sink.Write(p)

	if ms.enabled {
		ms.registry.SinkWrites.WithLabelValues(ms.name).Inc()
		ms.registry.SinkBytesWritten.WithLabelValues(ms.name).Add(float64(n))
		if err != nil {
			ms.registry.SinkErrors.WithLabelValues("write", ms.name).Inc()
		}
		ms.publishBufferState()
	}

	return n, err
}

// Flush forwards to the wrapped sink and counts the flush.
func (ms *Sink) Flush() error {
	err := ms.sink.Flush()

	if ms.enabled {
		ms.registry.SinkFlushes.WithLabelValues(ms.name).Inc()
		if err != nil {
			ms.registry.SinkErrors.WithLabelValues("flush", ms.name).Inc()
		}
		ms.publishBufferState()
	}

	return err
}

// Unwrap returns the wrapped sink.
func (ms *Sink) Unwrap() stream.Sink {
	return ms.sink
}

func (ms *Sink) publishBufferState() {
	if !ms.enabled {
		return
	}
	if bs, ok := ms.sink.(bufferStater); ok {
		ms.registry.BufferUsage.WithLabelValues(ms.name).Set(float64(bs.Buffered()))
		ms.registry.BufferCapacity.WithLabelValues(ms.name).Set(float64(bs.Capacity()))
	}
}

// EnableMetrics enables metrics collection.
func (ms *Sink) EnableMetrics(config metrics.Config) error {
	ms.enabled = config.Enabled

	if config.Registry != nil {
		ms.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (ms *Sink) DisableMetrics() {
	ms.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (ms *Sink) MetricsEnabled() bool {
	return ms.enabled
}

// Source wraps a stream.Source with Prometheus metrics collection.
type Source struct {
	source   stream.Source
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewSource creates a metered source counting on the default registry.
func NewSource(src stream.Source, name string) *Source {
	return NewSourceWithConfig(src, name, metrics.Config{Enabled: true})
}

// NewSourceWithConfig creates a metered source with custom metrics
// configuration.
func NewSourceWithConfig(src stream.Source, name string, metricsConfig metrics.Config) *Source {
	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	ms := &Source{
		source:   src,
		name:     name,
		registry: registry,
		enabled:  metricsConfig.Enabled,
	}
	ms.publishBufferState()
	return ms
}

// Read forwards to the wrapped source and counts the call, the bytes it
// produced, and either the failure or the exhaustion a short fill signals.
func (ms *Source) Read(p []byte) (int, error) {
	n, err := ms.source.Read(p)

	if ms.enabled {
		ms.registry.SourceReads.WithLabelValues(ms.name).Inc()
		ms.registry.SourceBytesRead.WithLabelValues(ms.name).Add(float64(n))

		if err != nil {
			ms.registry.SourceErrors.WithLabelValues("read", ms.name).Inc()
		} else if n < len(p) {
			ms.registry.SourceExhaustions.WithLabelValues(ms.name).Inc()
		}
		ms.publishBufferState()
	}

	return n, err
}

// Unwrap returns the wrapped source.
func (ms *Source) Unwrap() stream.Source {
	return ms.source
}

func (ms *Source) publishBufferState() {
	if !ms.enabled {
		return
	}
	if bs, ok := ms.source.(bufferStater); ok {
		ms.registry.BufferUsage.WithLabelValues(ms.name).Set(float64(bs.Buffered()))
		ms.registry.BufferCapacity.WithLabelValues(ms.name).Set(float64(bs.Capacity()))
	}
}

// EnableMetrics enables metrics collection.
func (ms *Source) EnableMetrics(config metrics.Config) error {
	ms.enabled = config.Enabled

	if config.Registry != nil {
		ms.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (ms *Source) DisableMetrics() {
	ms.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (ms *Source) MetricsEnabled() bool {
	return ms.enabled
}
