package config

import (
	"os"
	"path/filepath"
	"strings"

	sderrors "sysdash/internal/errors"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the config file looked up in the working directory.
	ConfigFileName = "sysdash.yaml"
	// GlobalConfigDir is the directory for the per-user config.
	GlobalConfigDir = ".config/sysdash"
	// GlobalConfigFile is the per-user config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. SYSDASH_HISTORY_CAPACITY.
	EnvPrefix = "SYSDASH"
)

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"capacity":       "history.capacity",
	"interval":       "refresh.interval",
	"all-partitions": "disks.all_partitions",
	"quit-key":       "ui.quit_key",
	"log-file":       "log.file",
	"log-level":      "log.level",
}

// Load resolves the effective config. Lowest to highest precedence:
// defaults, config file, SYSDASH_* environment, explicitly set flags.
// An empty path searches the working directory, then the user config dir.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file, err := Find(path)
	if err != nil {
		return Config{}, err
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, sderrors.WrapWithCode(err, sderrors.ErrConfig,
				"Failed to read config file "+file,
				"Check the file exists and is valid YAML")
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, sderrors.WrapWithCode(err, sderrors.ErrConfig,
						"Cannot bind flag --"+name, "")
				}
			}
		}
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, sderrors.WrapWithCode(err, sderrors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax and value types (durations look like 1s or 500ms)")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Find locates the config file:
// 1. Explicit path (from --config flag)
// 2. sysdash.yaml in current directory
// 3. ~/.config/sysdash/config.yaml
//
// Returns an empty string when no file exists, which means defaults apply.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", sderrors.WrapWithCode(err, sderrors.ErrConfig,
				"Specified config file not found: "+explicit,
				"Check the path is correct, or run 'sysdash config init' to create one")
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, sderrors.WrapWithCode(err, sderrors.ErrConfig, "Cannot encode config", "")
	}
	return out, nil
}

// Write stores cfg as YAML at path, refusing to overwrite unless force is set.
func Write(path string, cfg Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return sderrors.New(sderrors.ErrConfig,
				"Config file already exists: "+path,
				"Pass --force to overwrite it")
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return sderrors.WrapWithCode(err, sderrors.ErrConfig, "Cannot create "+dir, "Check directory permissions")
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return sderrors.WrapWithCode(err, sderrors.ErrConfig, "Cannot write "+path, "Check file permissions")
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("history.capacity", d.History.Capacity)
	v.SetDefault("refresh.interval", d.Refresh.Interval)
	v.SetDefault("sensors.timeout", d.Sensors.Timeout)
	v.SetDefault("disks.all_partitions", d.Disks.AllPartitions)
	v.SetDefault("ui.quit_key", d.UI.QuitKey)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.production", d.Log.Production)
}
