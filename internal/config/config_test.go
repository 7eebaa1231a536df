package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	sderrors "sysdash/internal/errors"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 200, cfg.History.Capacity)
	assert.Equal(t, time.Second, cfg.Refresh.Interval)
	assert.Equal(t, "q", cfg.UI.QuitKey)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.InDelta(t, 200.0, cfg.Window(), 1e-9)
	assert.NoError(t, cfg.Validate())
}

func TestWithModifiersCopy(t *testing.T) {
	base := Default()
	cfg := base.WithCapacity(60).WithInterval(500 * time.Millisecond).WithQuitKey("x")

	assert.Equal(t, 200, base.History.Capacity)
	assert.Equal(t, 60, cfg.History.Capacity)
	assert.Equal(t, "x", cfg.UI.QuitKey)
	assert.InDelta(t, 30.0, cfg.Window(), 1e-9)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"zero capacity", Default().WithCapacity(0), "history.capacity"},
		{"negative capacity", Default().WithCapacity(-4), "history.capacity"},
		{"zero interval", Default().WithInterval(0), "refresh.interval"},
		{"zero timeout", Default().WithSensorTimeout(0), "sensors.timeout"},
		{"empty quit key", Default().WithQuitKey(""), "ui.quit_key"},
		{"bad log level", func() Config { c := Default(); c.Log.Level = "loud"; return c }(), "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.True(t, sderrors.IsCode(err, sderrors.ErrConfig))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("capacity", 200, "")
	fs.Duration("interval", time.Second, "")
	fs.Bool("all-partitions", false, "")
	fs.String("quit-key", "q", "")
	fs.String("log-file", "", "")
	fs.String("log-level", "info", "")
	return fs
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("", newFlags())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPrecedence(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `history:
  capacity: 50
refresh:
  interval: 2s
ui:
  quit_key: x
`)

	// file only
	cfg, err := Load(path, newFlags())
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.History.Capacity)
	assert.Equal(t, 2*time.Second, cfg.Refresh.Interval)
	assert.Equal(t, "x", cfg.UI.QuitKey)

	// environment beats file
	t.Setenv("SYSDASH_HISTORY_CAPACITY", "75")
	cfg, err = Load(path, newFlags())
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.History.Capacity)

	// an unchanged flag does not mask the environment
	fs := newFlags()
	cfg, err = Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.History.Capacity)

	// an explicit flag beats everything
	require.NoError(t, fs.Parse([]string{"--capacity", "90", "--interval", "250ms"}))
	cfg, err = Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.History.Capacity)
	assert.Equal(t, 250*time.Millisecond, cfg.Refresh.Interval)
	assert.Equal(t, "x", cfg.UI.QuitKey)
}

func TestLoadFindsLocalThenGlobal(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, GlobalConfigDir, GlobalConfigFile), "history:\n  capacity: 11\n")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 11, cfg.History.Capacity)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	writeFile(t, filepath.Join(cwd, ConfigFileName), "history:\n  capacity: 22\n")

	cfg, err = Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 22, cfg.History.Capacity)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "history:\n  capacity: 0\n")

	_, err := Load(path, nil)
	require.Error(t, err)
	assert.True(t, sderrors.IsCode(err, sderrors.ErrConfig))
	assert.Contains(t, err.Error(), "history.capacity")
}

func TestFindExplicitMissing(t *testing.T) {
	isolate(t)

	_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, sderrors.IsCode(err, sderrors.ErrConfig))

	path, err := Find("")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestWriteAndReload(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "sysdash.yaml")
	want := Default().WithCapacity(120).WithInterval(750 * time.Millisecond)

	require.NoError(t, Write(path, want, false))

	err := Write(path, Default(), false)
	require.Error(t, err)
	assert.True(t, sderrors.IsCode(err, sderrors.ErrConfig))

	got, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, Write(path, Default(), true))
	got, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}
