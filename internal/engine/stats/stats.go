// Package stats records frame timings through the global OpenTelemetry meter
// and logs a once-per-second FPS summary.
package stats

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/Faultbox/voxelspace/internal/engine/stats"

// Frames tracks render durations. It uses the global meter, which is a no-op
// unless the host installs a MeterProvider.
type Frames struct {
	log *zap.Logger
	now func() time.Time

	duration metric.Float64Histogram
	rendered metric.Int64Counter

	windowStart time.Time
	count       int
	total       time.Duration
	last        Summary
}

// Summary is the FPS window most recently completed.
type Summary struct {
	FPS     float64
	AvgTime time.Duration
}

// New creates a frame tracker that logs through log.
func New(log *zap.Logger) (*Frames, error) {
	m := otel.Meter(instrumentationName)
	f := &Frames{log: log, now: time.Now}

	var err error
	f.duration, err = m.Float64Histogram(
		"render.frame.duration",
		metric.WithDescription("Time spent rendering one frame"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame duration histogram: %w", err)
	}

	f.rendered, err = m.Int64Counter(
		"render.frames",
		metric.WithDescription("Total frames rendered"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame counter: %w", err)
	}

	f.windowStart = f.now()
	return f, nil
}

// Begin marks the start of a frame; call the returned func when it is done.
func (f *Frames) Begin() func() {
	start := f.now()
	return func() { f.record(f.now().Sub(start)) }
}

func (f *Frames) record(d time.Duration) {
	ctx := context.Background()
	f.duration.Record(ctx, float64(d)/float64(time.Millisecond))
	f.rendered.Add(ctx, 1)

	f.count++
	f.total += d
	elapsed := f.now().Sub(f.windowStart)
	if elapsed < time.Second {
		return
	}
	f.last = Summary{
		FPS:     float64(f.count) / elapsed.Seconds(),
		AvgTime: f.total / time.Duration(f.count),
	}
	f.log.Debug("fps",
		zap.Float64("fps", f.last.FPS),
		zap.Duration("avg_frame", f.last.AvgTime),
	)
	f.count = 0
	f.total = 0
	f.windowStart = f.now()
}

// Last returns the most recently completed one-second window.
func (f *Frames) Last() Summary {
	return f.last
}
