package output

import (
	"fmt"
	"time"
)

// Section constants to avoid hardcoded strings
const (
	SectionInfo   = "info"
	SectionCPU    = "cpu"
	SectionMemory = "memory"
	SectionDisk   = "disk"
)

const (
	gib = 1024 * 1024 * 1024
	gb  = 1_000_000_000

	// DateTimeLayout renders local time as month/day/year hour:min:sec.
	DateTimeLayout = "01/02/2006 15:04:05"
)

// UI/view-model types (no printing here)
type Item struct {
	Key   string
	Label string
	Value float64
	Unit  string
	Note  string
}

type Section struct {
	ID    string
	Title string
	Items []Item
}

type DashboardView struct {
	Sections []Section
}

// FormatUptime renders seconds starting from the coarsest nonzero unit.
// Smaller units always appear, even when zero.
func FormatUptime(uptime uint64) string {
	secs := uptime % 60
	mins := (uptime / 60) % 60
	hours := (uptime / 3600) % 24
	days := uptime / 86400

	switch {
	case days > 0:
		return fmt.Sprintf("%d days, %d hours, %d mins, %d secs", days, hours, mins, secs)
	case hours > 0:
		return fmt.Sprintf("%d hours, %d mins, %d secs", hours, mins, secs)
	case mins > 0:
		return fmt.Sprintf("%d mins, %d secs", mins, secs)
	default:
		return fmt.Sprintf("%d secs", secs)
	}
}

// BytesToGiB converts with the binary divisor used by the RAM line.
func BytesToGiB(b uint64) float64 { return float64(b) / gib }

// BytesToGB converts with the decimal divisor used by disk labels.
func BytesToGB(b uint64) float64 { return float64(b) / gb }

func FormatRAM(used, total uint64) string {
	return fmt.Sprintf("%.2f GB / %.2f GB", BytesToGiB(used), BytesToGiB(total))
}

func FormatDateTime(t time.Time) string {
	return t.Local().Format(DateTimeLayout)
}

// NewInfo formats the static-info panel.
func NewInfo(hostname, cpuModel string, ramUsed, ramTotal uint64, at time.Time, uptime uint64) Info {
	return Info{
		Hostname: hostname,
		CPUModel: cpuModel,
		RAM:      FormatRAM(ramUsed, ramTotal),
		DateTime: FormatDateTime(at),
		Uptime:   FormatUptime(uptime),
	}
}

// Label is the gauge's secondary text, e.g. "42.00% (42.00 / 100.00GB)".
func (g DiskGauge) Label() string {
	return fmt.Sprintf("%.2f%% (%.2f / %.2fGB)", g.Percent, BytesToGB(g.UsedBytes), BytesToGB(g.TotalBytes))
}

func CPUTitle(pct float64) string {
	return fmt.Sprintf("CPU: %.2f%%", pct)
}

func MemoryTitle(ram, swap float64) string {
	return fmt.Sprintf("Memory: RAM %.2f%% Swap %.2f%%", ram, swap)
}

// BuildDashboard flattens a frame into labelled sections for text output.
func BuildDashboard(f Frame) DashboardView {
	info := Section{ID: SectionInfo, Title: "System Info", Items: []Item{
		{Key: "hostname", Label: "Hostname", Note: f.Info.Hostname},
		{Key: "cpu_model", Label: "CPU", Note: f.Info.CPUModel},
		{Key: "ram", Label: "RAM", Note: f.Info.RAM},
		{Key: "datetime", Label: "Date/Time", Note: f.Info.DateTime},
		{Key: "uptime", Label: "Uptime", Note: f.Info.Uptime},
	}}

	cpu := Section{ID: SectionCPU, Title: CPUTitle(f.CPU.Percent), Items: []Item{
		{Key: "cpu_usage", Label: "Usage", Value: f.CPU.Percent, Unit: "%"},
		{Key: "cpu_samples", Label: "Samples", Value: float64(len(f.CPU.Series))},
	}}

	memory := Section{ID: SectionMemory, Title: MemoryTitle(f.Memory.RAMPercent, f.Memory.SwapPercent), Items: []Item{
		{Key: "ram_usage", Label: "RAM", Value: f.Memory.RAMPercent, Unit: "%"},
		{Key: "swap_usage", Label: "Swap", Value: f.Memory.SwapPercent, Unit: "%"},
	}}

	disks := Section{ID: SectionDisk, Title: "Disks"}
	for _, g := range f.Disks {
		disks.Items = append(disks.Items, Item{
			Key:   g.Name,
			Label: g.Name,
			Value: g.Percent,
			Unit:  "%",
			Note:  g.Label(),
		})
	}

	return DashboardView{Sections: []Section{info, cpu, memory, disks}}
}

func (v DashboardView) SectionByID(id string) *Section {
	for i := range v.Sections {
		if v.Sections[i].ID == id {
			return &v.Sections[i]
		}
	}
	return nil
}

func (s Section) ItemByKey(key string) *Item {
	for i := range s.Items {
		if s.Items[i].Key == key {
			return &s.Items[i]
		}
	}
	return nil
}
