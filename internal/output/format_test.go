package output

import (
	"testing"
	"time"

	"sysdash/internal/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 secs"},
		{59, "59 secs"},
		{60, "1 mins, 0 secs"},
		{65, "1 mins, 5 secs"},
		{3600, "1 hours, 0 mins, 0 secs"},
		{3661, "1 hours, 1 mins, 1 secs"},
		{86400, "1 days, 0 hours, 0 mins, 0 secs"},
		{90061, "1 days, 1 hours, 1 mins, 1 secs"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUptime(tt.in), "uptime %d", tt.in)
	}
}

func TestByteDivisors(t *testing.T) {
	assert.Equal(t, 1.0, BytesToGiB(1<<30))
	assert.Equal(t, 1.0, BytesToGB(1_000_000_000))
	assert.Equal(t, "1.00 GB / 16.00 GB", FormatRAM(1<<30, 16<<30))
}

func TestDiskLabel(t *testing.T) {
	g := DiskGauge{Name: "/dev/sda1", UsedBytes: 42_000_000_000, TotalBytes: 100_000_000_000, Percent: 42}
	assert.Equal(t, "42.00% (42.00 / 100.00GB)", g.Label())
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "CPU: 12.35%", CPUTitle(12.346))
	assert.Equal(t, "Memory: RAM 50.00% Swap 0.00%", MemoryTitle(50, 0))
}

func TestNewInfo(t *testing.T) {
	at := time.Date(2024, 3, 7, 9, 5, 2, 0, time.Local)
	info := NewInfo("box", "Test CPU", 2<<30, 8<<30, at, 65)

	assert.Equal(t, "box", info.Hostname)
	assert.Equal(t, "Test CPU", info.CPUModel)
	assert.Equal(t, "2.00 GB / 8.00 GB", info.RAM)
	assert.Equal(t, "03/07/2024 09:05:02", info.DateTime)
	assert.Equal(t, "1 mins, 5 secs", info.Uptime)
}

func TestFrameXRange(t *testing.T) {
	f := Frame{Elapsed: 250, Window: 200}
	lo, hi := f.XRange()
	assert.Equal(t, 50.0, lo)
	assert.Equal(t, 250.0, hi)
}

func TestFrameClone(t *testing.T) {
	f := Frame{
		Tick:  1,
		CPU:   CPUView{Series: []history.Sample{{Elapsed: 0, Value: 1}}},
		Disks: []DiskGauge{{Name: "a"}},
	}

	c := f.Clone()
	c.CPU.Series[0].Value = 99
	c.Disks[0].Name = "b"

	assert.Equal(t, 1.0, f.CPU.Series[0].Value)
	assert.Equal(t, "a", f.Disks[0].Name)
	assert.True(t, c.Ready())
	assert.False(t, Frame{}.Ready())
}

func TestBuildDashboard(t *testing.T) {
	f := Frame{
		Tick:   3,
		Info:   Info{Hostname: "box", Uptime: "5 secs"},
		CPU:    CPUView{Percent: 12.5},
		Memory: MemoryView{RAMPercent: 40, SwapPercent: 2},
		Disks: []DiskGauge{
			{Name: "/dev/sda1", Percent: 50, UsedBytes: 50_000_000_000, TotalBytes: 100_000_000_000},
		},
	}

	view := BuildDashboard(f)
	require.Len(t, view.Sections, 4)

	info := view.SectionByID(SectionInfo)
	require.NotNil(t, info)
	assert.Equal(t, "box", info.ItemByKey("hostname").Note)

	cpu := view.SectionByID(SectionCPU)
	require.NotNil(t, cpu)
	assert.Equal(t, "CPU: 12.50%", cpu.Title)

	disk := view.SectionByID(SectionDisk)
	require.NotNil(t, disk)
	item := disk.ItemByKey("/dev/sda1")
	require.NotNil(t, item)
	assert.Equal(t, "50.00% (50.00 / 100.00GB)", item.Note)

	assert.Nil(t, view.SectionByID("network"))
}

func TestBuildDashboardNoDisks(t *testing.T) {
	view := BuildDashboard(Frame{})
	assert.Empty(t, view.SectionByID(SectionDisk).Items)
}
