package services

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
)

type HostResult struct {
	Hostname string
	Uptime   uint64
}

type HostSensor struct {
	info func(ctx context.Context) (*host.InfoStat, error)
}

func NewHostSensor() *HostSensor {
	return &HostSensor{info: host.InfoWithContext}
}

func (s *HostSensor) Name() string {
	return "Host"
}

func (s *HostSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *HostSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *HostSensor) Collect(ctx context.Context) (any, error) {
	return s.Read(ctx)
}

func (s *HostSensor) Read(ctx context.Context) (HostResult, error) {
	info, err := s.info(ctx)
	if err != nil {
		return HostResult{}, fmt.Errorf("failed to get host info: %w", err)
	}
	if info == nil {
		return HostResult{}, fmt.Errorf("failed to get host info: empty result")
	}

	return HostResult{
		Hostname: info.Hostname,
		Uptime:   info.Uptime,
	}, nil
}
