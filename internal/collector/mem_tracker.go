package collector

import (
	"context"

	"sysdash/internal/history"

	"go.uber.org/zap"
)

// MemReading is the last byte counts seen by the memory tracker.
type MemReading struct {
	RAMUsed   uint64
	RAMTotal  uint64
	SwapUsed  uint64
	SwapTotal uint64
}

// MemoryTracker keeps paired RAM and swap histories. Both are appended in
// the same step, so they always have equal length and matching timestamps.
type MemoryTracker struct {
	src  MemReader
	ram  *history.Bounded[history.Sample]
	swap *history.Bounded[history.Sample]
	log  *zap.Logger

	last    MemReading
	ramPct  float64
	swapPct float64
}

func NewMemoryTracker(src MemReader, capacity int, log *zap.Logger) (*MemoryTracker, error) {
	ram, err := history.New[history.Sample](capacity)
	if err != nil {
		return nil, err
	}
	swap, err := history.New[history.Sample](capacity)
	if err != nil {
		return nil, err
	}
	return &MemoryTracker{src: src, ram: ram, swap: swap, log: nopIfNil(log)}, nil
}

// Sample reads memory usage and appends both percentages at elapsed.
// If the read fails both series record 0.
func (t *MemoryTracker) Sample(ctx context.Context, elapsed float64) (ram, swap float64) {
	res, err := t.src.Read(ctx)
	if err != nil {
		logDegraded(t.log, "memory", err)
		t.last = MemReading{}
	} else {
		t.last = MemReading{
			RAMUsed:   res.Used,
			RAMTotal:  res.Total,
			SwapUsed:  res.SwapUsed,
			SwapTotal: res.SwapTotal,
		}
	}

	t.ramPct = percent(t.last.RAMUsed, t.last.RAMTotal)
	t.swapPct = percent(t.last.SwapUsed, t.last.SwapTotal)

	t.ram.Append(history.Sample{Elapsed: elapsed, Value: t.ramPct})
	t.swap.Append(history.Sample{Elapsed: elapsed, Value: t.swapPct})
	return t.ramPct, t.swapPct
}

func (t *MemoryTracker) Reading() MemReading { return t.last }

func (t *MemoryTracker) RAMPercent() float64  { return t.ramPct }
func (t *MemoryTracker) SwapPercent() float64 { return t.swapPct }

func (t *MemoryTracker) RAMHistory() []history.Sample  { return t.ram.Slice() }
func (t *MemoryTracker) SwapHistory() []history.Sample { return t.swap.Slice() }

func (t *MemoryTracker) Capacity() int { return t.ram.Cap() }
