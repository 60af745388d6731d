// Package config loads the optional TOML settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/hecto/constants"
)

// Driver names accepted in the config file
const (
	DriverANSI  = "ansi"
	DriverTcell = "tcell"
)

// Environment overrides
const (
	EnvConfigPath = "HECTO_CONFIG"
	EnvDebug      = "HECTO_DEBUG"
)

// Config holds runtime settings. The banner name and version are not configurable.
type Config struct {
	// Driver selects the terminal implementation: "ansi" (default) or "tcell"
	Driver string `toml:"driver"`

	// Debug enables file logging
	Debug bool `toml:"debug"`

	// LogDir is where the debug log is written, relative to the working directory unless absolute
	LogDir string `toml:"log_dir"`
}

// Default returns the settings used when no config file exists
func Default() Config {
	return Config{
		Driver: DriverANSI,
		LogDir: "logs",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/hecto/config.toml or the platform equivalent
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, constants.Name, "config.toml"), nil
}

// Load reads path over the defaults. A missing file is not an error; unknown keys are.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv loads the file named by HECTO_CONFIG (or DefaultPath) and applies HECTO_DEBUG
func FromEnv() (Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			// No config dir (e.g. HOME unset) is the same as no config file
			return applyEnv(Default())
		}
		path = p
	}

	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	return applyEnv(cfg)
}

func applyEnv(cfg Config) (Config, error) {
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		cfg.Debug = debug
	}
	return cfg, nil
}

// Validate checks enumerated fields
func (c Config) Validate() error {
	switch c.Driver {
	case DriverANSI, DriverTcell:
	default:
		return fmt.Errorf("unknown driver %q (want %q or %q)", c.Driver, DriverANSI, DriverTcell)
	}
	if c.LogDir == "" {
		return errors.New("log_dir must not be empty")
	}
	return nil
}
