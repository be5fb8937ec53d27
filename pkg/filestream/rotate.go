package filestream

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fisherro/streams/pkg/metrics"
	"github.com/fisherro/streams/pkg/stream"
)

// Clock provides the current time. It can be mocked for testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// rotationParser accepts standard 5-field cron expressions and descriptors
// like @hourly and @daily.
var rotationParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// RotateConfig configures a RotatingSink.
type RotateConfig struct {
	// Path is the base path. Each generation gets the time it was opened
	// stamped into the name before the extension.
	Path string

	// Schedule is the cron expression choosing rotation boundaries.
	Schedule string

	// Clock provides the current time. If nil, SystemClock is used.
	Clock Clock
}

// RotatingSink is an owned file sink that starts a new generation whenever
// a cron boundary passes. The boundary is checked synchronously on each
// write; no goroutines or timers are involved, so an idle sink rotates on
// its next write.
type RotatingSink struct {
	cfg      RotateConfig
	schedule cron.Schedule
	sink     *Sink
	next     time.Time
	closed   bool

	// metrics wiring, see metrics.go
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewRotatingSink creates a rotating sink writing under path, rotating on
// the given cron schedule.
func NewRotatingSink(path, schedule string) (*RotatingSink, error) {
	return NewRotatingSinkWithConfig(RotateConfig{Path: path, Schedule: schedule})
}

// NewRotatingSinkWithConfig creates a rotating sink from a full config.
func NewRotatingSinkWithConfig(config RotateConfig) (*RotatingSink, error) {
	if config.Clock == nil {
		config.Clock = SystemClock{}
	}

	schedule, err := rotationParser.Parse(config.Schedule)
	if err != nil {
		return nil, fmt.Errorf("parse rotation schedule %q: %w", config.Schedule, err)
	}

	now := config.Clock.Now()
	sink, err := Create(stampedPath(config.Path, now))
	if err != nil {
		return nil, err
	}

	return &RotatingSink{
		cfg:      config,
		schedule: schedule,
		sink:     sink,
		next:     schedule.Next(now),
	}, nil
}

// Write hands p to the current generation, rotating first if a schedule
// boundary has passed.
func (r *RotatingSink) Write(p []byte) (int, error) {
	if r.closed {
		return 0, stream.ErrClosed
	}
	if now := r.cfg.Clock.Now(); !now.Before(r.next) {
		if err := r.rotate(now); err != nil {
			return 0, err
		}
	}
	return r.sink.Write(p)
}

// rotate closes the current generation and opens the next. The close is
// best-effort; a failure to open the new generation is reported and the
// next write retries the rotation.
func (r *RotatingSink) rotate(now time.Time) error {
	_ = r.sink.Close()

	sink, err := Create(stampedPath(r.cfg.Path, now))
	if err != nil {
		return fmt.Errorf("%w: %w", stream.ErrWrite, err)
	}
	r.sink = sink
	r.next = r.schedule.Next(now)

	if r.enabled {
		r.registry.Rotations.WithLabelValues(r.name).Inc()
	}
	return nil
}

// Flush delegates to the current generation; a no-op for file sinks.
func (r *RotatingSink) Flush() error {
	if r.closed {
		return stream.ErrClosed
	}
	return r.sink.Flush()
}

// Sync commits the current generation to stable storage.
func (r *RotatingSink) Sync() error {
	if r.closed {
		return stream.ErrClosed
	}
	return r.sink.Sync()
}

// Close closes the current generation. Idempotent.
func (r *RotatingSink) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.sink.Close()
}

// Current returns the file name of the active generation.
func (r *RotatingSink) Current() string {
	return r.sink.Name()
}

// stampedPath inserts the generation timestamp before the extension:
// logs/app.log becomes logs/app-20240601-150000.log.
func stampedPath(path string, now time.Time) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return base + "-" + now.Format("20060102-150405") + ext
}
