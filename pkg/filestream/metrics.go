package filestream

import (
	"github.com/fisherro/streams/pkg/metrics"
)

// NewRotatingSinkWithMetrics creates a rotating sink counting rotations on
// the default registry under name.
func NewRotatingSinkWithMetrics(path, schedule, name string) (*RotatingSink, error) {
	return NewRotatingSinkWithConfigAndMetrics(RotateConfig{Path: path, Schedule: schedule}, name, metrics.Config{Enabled: true})
}

// NewRotatingSinkWithConfigAndMetrics creates a rotating sink with custom
// metrics configuration.
func NewRotatingSinkWithConfigAndMetrics(config RotateConfig, name string, metricsConfig metrics.Config) (*RotatingSink, error) {
	r, err := NewRotatingSinkWithConfig(config)
	if err != nil {
		return nil, err
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		// Create custom registry if provided
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	r.name = name
	r.registry = registry
	r.enabled = metricsConfig.Enabled
	return r, nil
}

// EnableMetrics enables rotation counting.
func (r *RotatingSink) EnableMetrics(config metrics.Config) error {
	if config.Registry != nil {
		r.registry = metrics.NewRegistry(config.Registry)
	} else if r.registry == nil {
		r.registry = metrics.DefaultRegistry
	}

	r.enabled = config.Enabled
	return nil
}

// DisableMetrics disables rotation counting.
func (r *RotatingSink) DisableMetrics() {
	r.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (r *RotatingSink) MetricsEnabled() bool {
	return r.enabled
}
