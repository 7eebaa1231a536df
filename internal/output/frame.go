// Package output holds the read-only view model handed to renderers.
// Nothing in here touches the OS or prints.
package output

import (
	"time"

	"sysdash/internal/history"
)

// Frame is everything a renderer needs for one tick. Slices are copies of
// tracker state; a renderer may keep or mutate them freely.
type Frame struct {
	Tick    uint64
	At      time.Time
	Elapsed float64 // seconds since the shared start instant
	Window  float64 // chart x-axis span in seconds

	Info   Info
	CPU    CPUView
	Memory MemoryView
	Disks  []DiskGauge
}

// Info is the static-info panel, already formatted.
type Info struct {
	Hostname string
	CPUModel string
	RAM      string
	DateTime string
	Uptime   string
}

type CPUView struct {
	Percent float64
	Series  []history.Sample
}

// MemoryView carries the RAM and swap series. Both always have equal length
// and identical timestamps.
type MemoryView struct {
	RAMPercent  float64
	SwapPercent float64
	RAM         []history.Sample
	Swap        []history.Sample
}

// DiskGauge is the current usage of one unique disk.
type DiskGauge struct {
	Name       string
	Mountpoint string
	UsedBytes  uint64
	TotalBytes uint64
	Percent    float64
}

// XRange returns the visible x-axis bounds: the last Window seconds.
func (f Frame) XRange() (min, max float64) {
	return f.Elapsed - f.Window, f.Elapsed
}

// Ready reports whether the frame was produced by a tick. The zero Frame is
// what renderers hold before the first sample.
func (f Frame) Ready() bool {
	return f.Tick > 0
}

// Clone returns a deep copy of f.
func (f Frame) Clone() Frame {
	out := f
	out.CPU.Series = cloneSamples(f.CPU.Series)
	out.Memory.RAM = cloneSamples(f.Memory.RAM)
	out.Memory.Swap = cloneSamples(f.Memory.Swap)
	if f.Disks != nil {
		out.Disks = append([]DiskGauge(nil), f.Disks...)
	}
	return out
}

func cloneSamples(s []history.Sample) []history.Sample {
	if s == nil {
		return nil
	}
	return append([]history.Sample(nil), s...)
}
