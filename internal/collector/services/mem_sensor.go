package services

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"
)

type MemResult struct {
	Total     uint64
	Used      uint64
	SwapTotal uint64
	SwapUsed  uint64
}

type MemSensor struct {
	virtual func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	swap    func(ctx context.Context) (*mem.SwapMemoryStat, error)
}

func NewMemSensor() *MemSensor {
	return &MemSensor{
		virtual: mem.VirtualMemoryWithContext,
		swap:    mem.SwapMemoryWithContext,
	}
}

func (s *MemSensor) Name() string {
	return "Memory"
}

func (s *MemSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *MemSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *MemSensor) Collect(ctx context.Context) (any, error) {
	return s.Read(ctx)
}

// Read returns RAM and swap byte counts. When the swap query fails the swap
// fields of the virtual memory reading are used instead.
func (s *MemSensor) Read(ctx context.Context) (MemResult, error) {
	v, err := s.virtual(ctx)
	if err != nil {
		return MemResult{}, fmt.Errorf("failed to get virtual memory: %w", err)
	}
	if v == nil {
		return MemResult{}, fmt.Errorf("failed to get virtual memory: empty result")
	}

	swapTotal := v.SwapTotal
	swapUsed := uint64(0)
	if v.SwapTotal > v.SwapFree {
		swapUsed = v.SwapTotal - v.SwapFree
	}
	if swapStat, swapErr := s.swap(ctx); swapErr == nil && swapStat != nil {
		swapTotal = swapStat.Total
		swapUsed = swapStat.Used
	}

	return MemResult{
		Total:     v.Total,
		Used:      v.Used,
		SwapTotal: swapTotal,
		SwapUsed:  swapUsed,
	}, nil
}
