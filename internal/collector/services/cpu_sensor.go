package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"
)

type CPUResult struct {
	TotalUsage float64
	Model      string
	Cores      int
}

// CPUSensor reports aggregate utilization as the busy share of the time that
// passed between two consecutive readings. The first reading has nothing to
// compare against and reports 0.
type CPUSensor struct {
	times  func(ctx context.Context, percpu bool) ([]cpu.TimesStat, error)
	info   func(ctx context.Context) ([]cpu.InfoStat, error)
	counts func(ctx context.Context, logical bool) (int, error)

	mu    sync.Mutex
	prev  *cpu.TimesStat
	model string
	cores int
}

func NewCPUSensor() *CPUSensor {
	return &CPUSensor{
		times:  cpu.TimesWithContext,
		info:   cpu.InfoWithContext,
		counts: cpu.CountsWithContext,
	}
}

func (s *CPUSensor) Name() string {
	return "CPU"
}

func (s *CPUSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *CPUSensor) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	s.prev = nil
	s.mu.Unlock()
	return nil
}

func (s *CPUSensor) Collect(ctx context.Context) (any, error) {
	return s.Read(ctx)
}

// Read takes a new times snapshot and returns utilization since the last one.
func (s *CPUSensor) Read(ctx context.Context) (CPUResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.times(ctx, false)
	if err != nil {
		return CPUResult{}, fmt.Errorf("failed to get cpu times: %w", err)
	}
	if len(stats) == 0 {
		return CPUResult{}, fmt.Errorf("failed to get cpu times: empty result")
	}

	cur := stats[0]
	usage := 0.0
	if s.prev != nil {
		usage = busyPercent(*s.prev, cur)
	}
	s.prev = &cur

	s.loadStatic(ctx)

	return CPUResult{
		TotalUsage: usage,
		Model:      s.model,
		Cores:      s.cores,
	}, nil
}

// loadStatic fills the brand string and core count once.
func (s *CPUSensor) loadStatic(ctx context.Context) {
	if s.model != "" {
		return
	}
	s.model = "Unknown"
	if info, err := s.info(ctx); err == nil && len(info) > 0 && info[0].ModelName != "" {
		s.model = info[0].ModelName
	}
	if n, err := s.counts(ctx, true); err == nil {
		s.cores = n
	}
}

// busyPercent is the non-idle share of the interval between a and b.
// Guest time is already included in user time on Linux.
func busyPercent(a, b cpu.TimesStat) float64 {
	total := func(t cpu.TimesStat) float64 {
		return t.User + t.System + t.Idle + t.Nice + t.Iowait + t.Irq + t.Softirq + t.Steal
	}
	idle := func(t cpu.TimesStat) float64 { return t.Idle + t.Iowait }

	dTotal := total(b) - total(a)
	if dTotal <= 0 {
		return 0
	}
	dBusy := (total(b) - idle(b)) - (total(a) - idle(a))
	if dBusy <= 0 {
		return 0
	}
	pct := dBusy / dTotal * 100
	if pct > 100 {
		return 100
	}
	return pct
}
