package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sensorTestCase struct {
	name     string
	factory  func() Sensor
	optional bool
}

var sensorCases = []sensorTestCase{
	{name: "CPU", factory: func() Sensor { return NewCPUSensor() }},
	{name: "Memory", factory: func() Sensor { return NewMemSensor() }},
	{name: "Disk", factory: func() Sensor { return NewDiskSensor(false) }},
	{name: "Host", factory: func() Sensor { return NewHostSensor() }},
	// Containers and sandboxes often hide virtual filesystems.
	{name: "DiskAll", factory: func() Sensor { return NewDiskSensor(true) }, optional: true},
}

func TestSensorsSuite(t *testing.T) {
	ctx := context.Background()

	for _, tc := range sensorCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sensor := tc.factory()

			if err := sensor.Connect(ctx); err != nil {
				t.Fatalf("%s Connect failed: %v", tc.name, err)
			}
			defer sensor.Disconnect(ctx)

			result, err := sensor.Collect(ctx)
			if err != nil {
				if tc.optional {
					t.Logf("%s Collect skipped (optional): %v", tc.name, err)
					return
				}
				t.Fatalf("%s Collect failed: %v", tc.name, err)
			}
			if result == nil {
				t.Fatalf("%s Collect returned nil result", tc.name)
			}

			logSensorResult(t, tc.name, result)
		})
	}
}

func logSensorResult(t *testing.T, name string, result any) {
	t.Helper()

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		t.Logf("%s result: %+v", name, result)
		return
	}

	t.Logf("%s result:\n%s", name, payload)
}

func fakeCPUSensor(snapshots ...cpu.TimesStat) *CPUSensor {
	s := NewCPUSensor()
	i := 0
	s.times = func(ctx context.Context, percpu bool) ([]cpu.TimesStat, error) {
		if i >= len(snapshots) {
			return nil, errors.New("no more snapshots")
		}
		snap := snapshots[i]
		i++
		return []cpu.TimesStat{snap}, nil
	}
	s.info = func(ctx context.Context) ([]cpu.InfoStat, error) {
		return []cpu.InfoStat{{ModelName: "Test CPU @ 3.00GHz"}}, nil
	}
	s.counts = func(ctx context.Context, logical bool) (int, error) { return 8, nil }
	return s
}

func TestCPUSensorFirstReadReportsZero(t *testing.T) {
	s := fakeCPUSensor(cpu.TimesStat{User: 50, Idle: 50})

	res, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.TotalUsage)
	assert.Equal(t, "Test CPU @ 3.00GHz", res.Model)
	assert.Equal(t, 8, res.Cores)
}

func TestCPUSensorDelta(t *testing.T) {
	s := fakeCPUSensor(
		cpu.TimesStat{User: 10, System: 10, Idle: 80},
		// +100 ticks: 25 busy, 75 idle
		cpu.TimesStat{User: 30, System: 15, Idle: 150, Iowait: 5},
	)
	ctx := context.Background()

	_, err := s.Read(ctx)
	require.NoError(t, err)

	res, err := s.Read(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, res.TotalUsage, 1e-9)
}

func TestCPUSensorErrors(t *testing.T) {
	s := fakeCPUSensor()
	_, err := s.Read(context.Background())
	assert.Error(t, err)

	s.times = func(ctx context.Context, percpu bool) ([]cpu.TimesStat, error) { return nil, nil }
	_, err = s.Read(context.Background())
	assert.Error(t, err)
}

func TestCPUSensorUnknownModel(t *testing.T) {
	s := fakeCPUSensor(cpu.TimesStat{Idle: 1})
	s.info = func(ctx context.Context) ([]cpu.InfoStat, error) { return nil, errors.New("no cpuinfo") }

	res, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Unknown", res.Model)
}

func TestBusyPercent(t *testing.T) {
	tests := []struct {
		name string
		a, b cpu.TimesStat
		want float64
	}{
		{"no time passed", cpu.TimesStat{Idle: 10}, cpu.TimesStat{Idle: 10}, 0},
		{"fully busy", cpu.TimesStat{User: 0}, cpu.TimesStat{User: 10}, 100},
		{"fully idle", cpu.TimesStat{Idle: 0}, cpu.TimesStat{Idle: 10}, 0},
		{"counter went backwards", cpu.TimesStat{User: 10}, cpu.TimesStat{User: 5}, 0},
		{"half", cpu.TimesStat{}, cpu.TimesStat{System: 5, Idle: 5}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, busyPercent(tt.a, tt.b), 1e-9)
		})
	}
}

func TestMemSensorSwapFallback(t *testing.T) {
	s := NewMemSensor()
	s.virtual = func(ctx context.Context) (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Total: 1000, Used: 400, SwapTotal: 200, SwapFree: 150}, nil
	}
	s.swap = func(ctx context.Context) (*mem.SwapMemoryStat, error) {
		return nil, errors.New("swap unavailable")
	}

	res, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), res.Total)
	assert.Equal(t, uint64(400), res.Used)
	assert.Equal(t, uint64(200), res.SwapTotal)
	assert.Equal(t, uint64(50), res.SwapUsed)

	s.swap = func(ctx context.Context) (*mem.SwapMemoryStat, error) {
		return &mem.SwapMemoryStat{Total: 300, Used: 30}, nil
	}
	res, err = s.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(300), res.SwapTotal)
	assert.Equal(t, uint64(30), res.SwapUsed)
}

func TestMemSensorVirtualFailure(t *testing.T) {
	s := NewMemSensor()
	s.virtual = func(ctx context.Context) (*mem.VirtualMemoryStat, error) {
		return nil, errors.New("no meminfo")
	}

	_, err := s.Read(context.Background())
	assert.ErrorContains(t, err, "no meminfo")
}

func TestDiskSensorPartialUsageFailure(t *testing.T) {
	s := NewDiskSensor(false)
	s.partitions = func(ctx context.Context, all bool) ([]disk.PartitionStat, error) {
		assert.False(t, all)
		return []disk.PartitionStat{
			{Device: "/dev/sda1", Mountpoint: "/"},
			{Device: "/dev/sdb1", Mountpoint: "/data"},
		}, nil
	}
	s.usage = func(ctx context.Context, path string) (*disk.UsageStat, error) {
		if path == "/data" {
			return nil, errors.New("stale mount")
		}
		return &disk.UsageStat{Total: 100, Free: 40}, nil
	}

	res, err := s.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Partitions, 2)

	assert.Equal(t, "/dev/sda1", res.Partitions[0].Device)
	assert.Equal(t, uint64(100), res.Partitions[0].Total)
	assert.NoError(t, res.Partitions[0].Err)

	assert.Equal(t, "/dev/sdb1", res.Partitions[1].Device)
	assert.Zero(t, res.Partitions[1].Total)
	assert.Error(t, res.Partitions[1].Err)
}

func TestDiskSensorEnumerationFailure(t *testing.T) {
	s := NewDiskSensor(true)
	s.partitions = func(ctx context.Context, all bool) ([]disk.PartitionStat, error) {
		return nil, errors.New("no mtab")
	}

	_, err := s.Read(context.Background())
	assert.Error(t, err)
}

func TestHostSensor(t *testing.T) {
	s := NewHostSensor()
	s.info = func(ctx context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{Hostname: "box", Uptime: 3661}, nil
	}

	res, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "box", res.Hostname)
	assert.Equal(t, uint64(3661), res.Uptime)

	s.info = func(ctx context.Context) (*host.InfoStat, error) { return nil, errors.New("boom") }
	_, err = s.Read(context.Background())
	assert.Error(t, err)
}
