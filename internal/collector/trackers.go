// Package collector turns sensor readings into bounded metric histories and
// assembles the per-tick frame handed to renderers.
package collector

import (
	"context"
	"time"

	"sysdash/internal/collector/services"
	"sysdash/internal/config"
	"sysdash/internal/output"

	"go.uber.org/zap"
)

// ============================================================================
// TIME BASE
// ============================================================================

// Epoch is the start instant shared by every time-series tracker. time.Now
// carries a monotonic reading, so Elapsed never jumps with wall-clock changes.
type Epoch struct {
	start time.Time
	now   func() time.Time
	last  float64
}

func NewEpoch(now func() time.Time) *Epoch {
	if now == nil {
		now = time.Now
	}
	return &Epoch{start: now(), now: now}
}

// Elapsed returns seconds since the start instant, never less than any
// previously returned value.
func (e *Epoch) Elapsed() float64 {
	d := e.now().Sub(e.start).Seconds()
	if d < e.last {
		d = e.last
	}
	e.last = d
	return d
}

// ============================================================================
// AGGREGATE
// ============================================================================

// Sources bundles the OS readers behind each tracker.
type Sources struct {
	CPU    CPUReader
	Memory MemReader
	Disk   DiskReader
	Host   HostReader
}

// SystemSources returns gopsutil-backed sensors for cfg.
func SystemSources(cfg config.Config) Sources {
	return Sources{
		CPU:    services.NewCPUSensor(),
		Memory: services.NewMemSensor(),
		Disk:   services.NewDiskSensor(cfg.Disks.AllPartitions),
		Host:   services.NewHostSensor(),
	}
}

// Option configures Trackers.
type Option func(*Trackers)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Trackers) { t.now = now }
}

// Trackers owns every tracker and samples them in a fixed order each tick:
// CPU, memory, disk, host. It is driven by a single goroutine.
type Trackers struct {
	CPU    *CPUTracker
	Memory *MemoryTracker
	Disk   *DiskTracker
	Host   *HostTracker

	src     Sources
	epoch   *Epoch
	now     func() time.Time
	window  float64
	timeout time.Duration
	tick    uint64
	log     *zap.Logger
}

func New(src Sources, cfg config.Config, log *zap.Logger, opts ...Option) (*Trackers, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log = nopIfNil(log)

	t := &Trackers{
		src:     src,
		now:     time.Now,
		window:  cfg.Window(),
		timeout: cfg.Sensors.Timeout,
		log:     log,
	}
	for _, opt := range opts {
		opt(t)
	}

	var err error
	if t.CPU, err = NewCPUTracker(src.CPU, cfg.History.Capacity, log); err != nil {
		return nil, err
	}
	if t.Memory, err = NewMemoryTracker(src.Memory, cfg.History.Capacity, log); err != nil {
		return nil, err
	}
	t.Disk = NewDiskTracker(src.Disk, log)
	t.Host = NewHostTracker(src.Host, log)
	t.epoch = NewEpoch(t.now)

	return t, nil
}

// Connect prepares any source that is a full sensor.
func (t *Trackers) Connect(ctx context.Context) error {
	for _, s := range t.sensors() {
		if err := s.Connect(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close releases any source that is a full sensor.
func (t *Trackers) Close(ctx context.Context) {
	for _, s := range t.sensors() {
		if err := s.Disconnect(ctx); err != nil {
			t.log.Debug("sensor disconnect failed", zap.String("sensor", s.Name()), zap.Error(err))
		}
	}
}

func (t *Trackers) sensors() []services.Sensor {
	var out []services.Sensor
	for _, r := range []any{t.src.CPU, t.src.Memory, t.src.Disk, t.src.Host} {
		if s, ok := r.(services.Sensor); ok {
			out = append(out, s)
		}
	}
	return out
}

// Sample runs one tick and returns a frame holding copies of tracker state.
// Sampling failures degrade individual values; they never fail the tick.
func (t *Trackers) Sample(ctx context.Context) output.Frame {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	elapsed := t.epoch.Elapsed()

	cpuPct := t.CPU.Sample(ctx, elapsed)
	ramPct, swapPct := t.Memory.Sample(ctx, elapsed)
	disks := t.Disk.Sample(ctx)
	host := t.Host.Sample(ctx)

	t.tick++
	at := t.now()
	mem := t.Memory.Reading()

	t.log.Debug("tick sampled",
		zap.Uint64("tick", t.tick),
		zap.Float64("elapsed", elapsed),
		zap.Float64("cpu", cpuPct),
		zap.Float64("ram", ramPct),
		zap.Float64("swap", swapPct),
		zap.Int("disks", disks.Len()))

	return output.Frame{
		Tick:    t.tick,
		At:      at,
		Elapsed: elapsed,
		Window:  t.window,
		Info:    output.NewInfo(host.Hostname, t.CPU.Model(), mem.RAMUsed, mem.RAMTotal, at, host.Uptime),
		CPU: output.CPUView{
			Percent: cpuPct,
			Series:  t.CPU.History(),
		},
		Memory: output.MemoryView{
			RAMPercent:  ramPct,
			SwapPercent: swapPct,
			RAM:         t.Memory.RAMHistory(),
			Swap:        t.Memory.SwapHistory(),
		},
		Disks: disks.Gauges(),
	}
}

func (t *Trackers) Ticks() uint64 { return t.tick }
