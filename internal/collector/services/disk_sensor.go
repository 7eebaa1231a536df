package services

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// PartitionUsage is one mounted partition with its capacity figures.
// Err is set when the usage query for this mount failed; Total and Free
// are zero in that case.
type PartitionUsage struct {
	Device     string
	Mountpoint string
	Total      uint64
	Free       uint64
	Err        error
}

type DiskResult struct {
	Partitions []PartitionUsage
}

type DiskSensor struct {
	all        bool
	partitions func(ctx context.Context, all bool) ([]disk.PartitionStat, error)
	usage      func(ctx context.Context, path string) (*disk.UsageStat, error)
}

// NewDiskSensor creates a disk sensor. With all set, virtual filesystems
// are enumerated too.
func NewDiskSensor(all bool) *DiskSensor {
	return &DiskSensor{
		all:        all,
		partitions: disk.PartitionsWithContext,
		usage:      disk.UsageWithContext,
	}
}

func (s *DiskSensor) Name() string {
	return "Disk"
}

func (s *DiskSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *DiskSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *DiskSensor) Collect(ctx context.Context) (any, error) {
	return s.Read(ctx)
}

// Read enumerates partitions in OS order. A failed usage query is recorded
// on the partition and does not fail the reading.
func (s *DiskSensor) Read(ctx context.Context) (DiskResult, error) {
	partitions, err := s.partitions(ctx, s.all)
	if err != nil {
		return DiskResult{}, fmt.Errorf("failed to get partitions: %w", err)
	}

	out := make([]PartitionUsage, 0, len(partitions))
	for _, p := range partitions {
		pu := PartitionUsage{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
		}

		u, err := s.usage(ctx, p.Mountpoint)
		switch {
		case err != nil:
			pu.Err = fmt.Errorf("failed to get usage for %s: %w", p.Mountpoint, err)
		case u != nil:
			pu.Total = u.Total
			pu.Free = u.Free
		}

		out = append(out, pu)
	}

	return DiskResult{Partitions: out}, nil
}
