package collector

import (
	"context"

	"sysdash/internal/history"

	"go.uber.org/zap"
)

// CPUTracker keeps the rolling history of aggregate CPU utilization.
type CPUTracker struct {
	src     CPUReader
	hist    *history.Bounded[history.Sample]
	log     *zap.Logger
	current float64
	model   string
}

func NewCPUTracker(src CPUReader, capacity int, log *zap.Logger) (*CPUTracker, error) {
	h, err := history.New[history.Sample](capacity)
	if err != nil {
		return nil, err
	}
	return &CPUTracker{
		src:   src,
		hist:  h,
		log:   nopIfNil(log),
		model: "Unknown",
	}, nil
}

// Sample reads utilization, appends it at elapsed and returns it. A failed
// read repeats the last known value (0 before any success).
func (t *CPUTracker) Sample(ctx context.Context, elapsed float64) float64 {
	res, err := t.src.Read(ctx)
	if err != nil {
		logDegraded(t.log, "cpu", err)
	} else {
		t.current = clamp(res.TotalUsage)
		if res.Model != "" {
			t.model = res.Model
		}
	}

	t.hist.Append(history.Sample{Elapsed: elapsed, Value: t.current})
	return t.current
}

// Current is the most recently reported percentage.
func (t *CPUTracker) Current() float64 { return t.current }

// History returns the samples oldest first.
func (t *CPUTracker) History() []history.Sample { return t.hist.Slice() }

// Model is the CPU brand string, "Unknown" until a reading provides one.
func (t *CPUTracker) Model() string { return t.model }

func (t *CPUTracker) Capacity() int { return t.hist.Cap() }
