// Package metrics provides Prometheus instrumentation for stream components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for stream components.
type Registry struct {
	// Sink Metrics
	SinkWrites       *prometheus.CounterVec
	SinkBytesWritten *prometheus.CounterVec
	SinkFlushes      *prometheus.CounterVec
	SinkErrors       *prometheus.CounterVec

	// Source Metrics
	SourceReads       *prometheus.CounterVec
	SourceBytesRead   *prometheus.CounterVec
	SourceExhaustions *prometheus.CounterVec
	SourceErrors      *prometheus.CounterVec
	UngetBytes        *prometheus.CounterVec

	// Buffer Metrics
	BufferUsage    *prometheus.GaugeVec
	BufferCapacity *prometheus.GaugeVec

	// Rotation Metrics
	Rotations *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by stream components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Sink Metrics
		SinkWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streams",
				Subsystem: "sink",
				Name:      "writes_total",
				Help:      "Total number of sink write calls",
			},
			[]string{"sink_name"},
		),

		SinkBytesWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streams",
				Subsystem: "sink",
				Name:      "bytes_written_total",
				Help:      "Total bytes accepted by sinks",
			},
			[]string{"sink_name"},
		),

		SinkFlushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streams",
				Subsystem: "sink",
				Name:      "flushes_total",
				Help:      "Total number of sink flushes",
			},
			[]string{"sink_name"},
		),

		SinkErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streams",
				Subsystem: "sink",
				Name:      "errors_total",
				Help:      "Total number of sink failures",
			},
			[]string{"operation", "sink_name"},
		),

		// Source Metrics
		SourceReads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streams",
				Subsystem: "source",
				Name:      "reads_total",
				Help:      "Total number of source read calls",
			},
			[]string{"source_name"},
		),

		SourceBytesRead: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streams",
				Subsystem: "source",
				Name:      "bytes_read_total",
				Help:      "Total bytes produced by sources",
			},
			[]string{"source_name"},
		),

		SourceExhaustions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streams",
				Subsystem: "source",
				Name:      "exhaustions_total",
				Help:      "Total number of short fills signaling exhaustion",
			},
			[]string{"source_name"},
		),

		SourceErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streams",
				Subsystem: "source",
				Name:      "errors_total",
				Help:      "Total number of source failures",
			},
			[]string{"operation", "source_name"},
		),

		UngetBytes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streams",
				Subsystem: "source",
				Name:      "unget_bytes_total",
				Help:      "Total bytes pushed back onto sources",
			},
			[]string{"source_name"},
		),

		// Buffer Metrics
		BufferUsage: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "streams",
				Subsystem: "buffer",
				Name:      "usage_bytes",
				Help:      "Bytes currently held in a stream buffer",
			},
			[]string{"stream_name"},
		),

		BufferCapacity: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "streams",
				Subsystem: "buffer",
				Name:      "capacity_bytes",
				Help:      "Stream buffer capacity",
			},
			[]string{"stream_name"},
		),

		// Rotation Metrics
		Rotations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streams",
				Subsystem: "rotate",
				Name:      "rotations_total",
				Help:      "Total number of file rotations",
			},
			[]string{"sink_name"},
		),
	}
}
