package config

import (
	"fmt"
	"time"

	sderrors "sysdash/internal/errors"
)

// Config contains the startup parameters of the dashboard.
// Use Default() to get sensible defaults, then override as needed.
type Config struct {
	History HistoryConfig `mapstructure:"history" yaml:"history"`
	Refresh RefreshConfig `mapstructure:"refresh" yaml:"refresh"`
	Sensors SensorConfig  `mapstructure:"sensors" yaml:"sensors"`
	Disks   DiskConfig    `mapstructure:"disks" yaml:"disks"`
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// HistoryConfig sizes the per-series ring buffers.
type HistoryConfig struct {
	Capacity int `mapstructure:"capacity" yaml:"capacity"` // Samples kept per series (default: 200)
}

// RefreshConfig controls the tick cadence.
type RefreshConfig struct {
	Interval time.Duration `mapstructure:"interval" yaml:"interval"` // Minimum time between ticks (default: 1s)
}

// SensorConfig bounds each OS query.
type SensorConfig struct {
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"` // Per-tick sampling deadline (default: 2s)
}

// DiskConfig selects which mounts are enumerated.
type DiskConfig struct {
	AllPartitions bool `mapstructure:"all_partitions" yaml:"all_partitions"` // Include virtual filesystems (default: false)
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	QuitKey string `mapstructure:"quit_key" yaml:"quit_key"` // Key that ends the dashboard (default: "q")
}

// LogConfig controls the zap logger. An empty File disables logging, since
// stdout belongs to the terminal UI.
type LogConfig struct {
	File       string `mapstructure:"file" yaml:"file"`
	Level      string `mapstructure:"level" yaml:"level"`           // debug, info, warn, error (default: info)
	Production bool   `mapstructure:"production" yaml:"production"` // JSON encoding instead of console
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		History: HistoryConfig{Capacity: 200},
		Refresh: RefreshConfig{Interval: 1 * time.Second},
		Sensors: SensorConfig{Timeout: 2 * time.Second},
		Disks:   DiskConfig{AllPartitions: false},
		UI:      UIConfig{QuitKey: "q"},
		Log:     LogConfig{Level: "info"},
	}
}

// WithCapacity returns a copy of the config with a modified history capacity.
func (c Config) WithCapacity(n int) Config {
	c.History.Capacity = n
	return c
}

// WithInterval returns a copy of the config with a modified refresh interval.
func (c Config) WithInterval(d time.Duration) Config {
	c.Refresh.Interval = d
	return c
}

// WithSensorTimeout returns a copy of the config with a modified sampling deadline.
func (c Config) WithSensorTimeout(d time.Duration) Config {
	c.Sensors.Timeout = d
	return c
}

// WithAllPartitions returns a copy of the config with virtual filesystems included or excluded.
func (c Config) WithAllPartitions(all bool) Config {
	c.Disks.AllPartitions = all
	return c
}

// WithQuitKey returns a copy of the config with a modified quit key.
func (c Config) WithQuitKey(key string) Config {
	c.UI.QuitKey = key
	return c
}

// WithLogFile returns a copy of the config logging to path.
func (c Config) WithLogFile(path string) Config {
	c.Log.File = path
	return c
}

// Window is the span of the chart x-axis in seconds: one slot per sample.
func (c Config) Window() float64 {
	return float64(c.History.Capacity) * c.Refresh.Interval.Seconds()
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.History.Capacity <= 0 {
		return invalid("history.capacity", fmt.Sprintf("must be positive, got %d", c.History.Capacity))
	}
	if c.Refresh.Interval <= 0 {
		return invalid("refresh.interval", "must be positive")
	}
	if c.Sensors.Timeout <= 0 {
		return invalid("sensors.timeout", "must be positive")
	}
	if c.UI.QuitKey == "" {
		return invalid("ui.quit_key", "must not be empty")
	}
	if !logLevels[c.Log.Level] {
		return invalid("log.level", fmt.Sprintf("unknown level %q", c.Log.Level))
	}
	return nil
}

func invalid(field, message string) error {
	return sderrors.New(sderrors.ErrConfig,
		"config error: "+field+" "+message,
		"Fix the value in your config file, environment (SYSDASH_*), or flags.")
}
