package collector

import (
	"context"

	"sysdash/internal/collector/services"
	"sysdash/internal/output"

	"go.uber.org/zap"
)

// DiskSet is the deduplicated gauge set of one tick, in first-seen order.
type DiskSet struct {
	gauges []output.DiskGauge
	index  map[string]int
}

// newDiskSet keys partitions by device name. The first partition seen for a
// name wins; later mounts of the same device are ignored. An empty name is
// a key like any other.
func newDiskSet(parts []services.PartitionUsage) DiskSet {
	set := DiskSet{index: make(map[string]int, len(parts))}
	for _, p := range parts {
		if _, seen := set.index[p.Device]; seen {
			continue
		}

		g := output.DiskGauge{Name: p.Device, Mountpoint: p.Mountpoint}
		if p.Err == nil {
			used := uint64(0)
			if p.Total > p.Free {
				used = p.Total - p.Free
			}
			g.UsedBytes = used
			g.TotalBytes = p.Total
			g.Percent = percent(used, p.Total)
		}

		set.index[p.Device] = len(set.gauges)
		set.gauges = append(set.gauges, g)
	}
	return set
}

func (s DiskSet) Len() int { return len(s.gauges) }

// Names returns the unique disk names in first-seen order.
func (s DiskSet) Names() []string {
	names := make([]string, len(s.gauges))
	for i, g := range s.gauges {
		names[i] = g.Name
	}
	return names
}

func (s DiskSet) Get(name string) (output.DiskGauge, bool) {
	i, ok := s.index[name]
	if !ok {
		return output.DiskGauge{}, false
	}
	return s.gauges[i], true
}

// Gauges returns a copy of the gauges in first-seen order.
func (s DiskSet) Gauges() []output.DiskGauge {
	return append([]output.DiskGauge{}, s.gauges...)
}

// DiskTracker recomputes the disk gauge set every tick. Disks have no
// history: the set is replaced wholesale.
type DiskTracker struct {
	src     DiskReader
	log     *zap.Logger
	current DiskSet
}

func NewDiskTracker(src DiskReader, log *zap.Logger) *DiskTracker {
	return &DiskTracker{src: src, log: nopIfNil(log)}
}

// Sample enumerates partitions and rebuilds the set. A failed enumeration
// yields an empty set; a failed usage query keeps the disk with zero usage.
func (t *DiskTracker) Sample(ctx context.Context) DiskSet {
	res, err := t.src.Read(ctx)
	if err != nil {
		logDegraded(t.log, "disk", err)
		t.current = newDiskSet(nil)
		return t.current
	}

	for _, p := range res.Partitions {
		if p.Err != nil {
			t.log.Debug("partition usage unavailable",
				zap.String("device", p.Device),
				zap.String("mountpoint", p.Mountpoint),
				zap.Error(p.Err))
		}
	}

	t.current = newDiskSet(res.Partitions)
	return t.current
}

func (t *DiskTracker) Current() DiskSet { return t.current }
