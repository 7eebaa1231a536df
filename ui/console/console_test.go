package console

import (
	"bytes"
	"strings"
	"testing"

	"sysdash/internal/history"
	"sysdash/internal/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		section  string
		expected string
	}{
		{output.SectionCPU, colorRed},
		{output.SectionMemory, colorCyan},
		{output.SectionDisk, colorBlue},
		{output.SectionInfo, colorWhite},
		{"UNKNOWN", colorYellow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, colorFor(tt.section), "colorFor(%q)", tt.section)
	}
}

func sampleFrame() output.Frame {
	return output.Frame{
		Tick: 2,
		Info: output.Info{
			Hostname: "box",
			CPUModel: "A very long processor brand string",
			RAM:      "1.00 GB / 4.00 GB",
			DateTime: "03/07/2024 09:05:02",
			Uptime:   "1 mins, 5 secs",
		},
		CPU:    output.CPUView{Percent: 12.5, Series: []history.Sample{{Elapsed: 0, Value: 0}, {Elapsed: 1, Value: 12.5}}},
		Memory: output.MemoryView{RAMPercent: 25, SwapPercent: 0},
		Disks: []output.DiskGauge{
			{Name: "/dev/sda1", Percent: 42, UsedBytes: 42_000_000_000, TotalBytes: 100_000_000_000},
			{Name: ""},
		},
	}
}

func TestPrintFrame(t *testing.T) {
	var buf bytes.Buffer
	PrintFrame(&buf, sampleFrame())
	out := buf.String()

	assert.Contains(t, out, "SYSDASH SNAPSHOT")
	assert.Contains(t, out, "CPU: 12.50%")
	assert.Contains(t, out, "Memory: RAM 25.00% Swap 0.00%")
	assert.Contains(t, out, "1.00 GB / 4.00 GB")
	assert.Contains(t, out, "42.00% (42.00 / 100.00GB)")
	assert.Contains(t, out, "(unnamed)")
	assert.Contains(t, out, "1 mins, 5 secs")
}

func TestPrintNoDisks(t *testing.T) {
	f := sampleFrame()
	f.Disks = nil

	var buf bytes.Buffer
	PrintFrame(&buf, f)

	lines := strings.Split(buf.String(), "\n")
	var after bool
	for _, l := range lines {
		if strings.Contains(l, "Disks") {
			after = true
			continue
		}
		if after {
			assert.Contains(t, l, "(none)")
			break
		}
	}
	assert.True(t, after)
}

func TestRecorderKeepsLastFrame(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	assert.False(t, ok)

	f := sampleFrame()
	require.NoError(t, r.Draw(f))
	f.Tick = 3
	require.NoError(t, r.Draw(f))

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, uint64(3), last.Tick)
	assert.Equal(t, 2, r.Frames())

	// recorded frames do not alias the caller's slices
	f.CPU.Series[0].Value = 99
	assert.Equal(t, 0.0, last.CPU.Series[0].Value)
}
