// Package config defines the on-disk configuration and the data
// directory layout. All lookups happen once at startup; collaborators
// receive the resulting struct and never consult the environment
// themselves.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/penwyp/go-tuxsplit/internal/core/comparison"
	"github.com/penwyp/go-tuxsplit/internal/core/timing"
)

// DataDirEnv overrides the data directory lookup entirely.
const DataDirEnv = "TUXSPLIT_DATADIR"

const (
	configFileName = "config.yaml"
	runFileName    = "run.json"
	logFileName    = "tuxsplit.log"
)

// Config is the complete tuxsplit configuration.
type Config struct {
	General General `yaml:"general"`
	Display Display `yaml:"display"`
	Log     Log     `yaml:"log"`
}

// General selects the run document and how it is compared.
type General struct {
	RunFile      string `yaml:"run_file"`
	Comparison   string `yaml:"comparison"`
	TimingMethod string `yaml:"timing_method"`
}

// Display controls time formatting and the live view cadence.
type Display struct {
	Precision        int     `yaml:"precision"`
	RefreshPerSecond float64 `yaml:"refresh_per_second"`
}

// Log controls the global logger.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	dataDir := DataDir()
	return &Config{
		General: General{
			RunFile:      filepath.Join(dataDir, runFileName),
			Comparison:   comparison.PersonalBest,
			TimingMethod: timing.RealTime.String(),
		},
		Display: Display{
			Precision:        timing.DefaultPrecision,
			RefreshPerSecond: 1.0,
		},
		Log: Log{
			Level: "info",
			File:  filepath.Join(dataDir, "logs", logFileName),
		},
	}
}

// Load reads the configuration at path, or the default location when
// path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(DataDir(), configFileName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fills unset fields with defaults and rejects values the
// rest of the program cannot honor.
func (c *Config) Validate() error {
	if c.General.RunFile == "" {
		c.General.RunFile = filepath.Join(DataDir(), runFileName)
	}
	if c.General.Comparison == "" {
		c.General.Comparison = comparison.PersonalBest
	}
	if c.General.TimingMethod == "" {
		c.General.TimingMethod = timing.RealTime.String()
	}
	if _, err := timing.ParseMethod(c.General.TimingMethod); err != nil {
		return err
	}
	if c.Display.Precision == 0 {
		c.Display.Precision = timing.DefaultPrecision
	}
	if c.Display.Precision < 0 || c.Display.Precision > 9 {
		return fmt.Errorf("display precision %d out of range (0-9)", c.Display.Precision)
	}
	if c.Display.RefreshPerSecond == 0 {
		c.Display.RefreshPerSecond = 1.0
	}
	if c.Display.RefreshPerSecond < 0 {
		return fmt.Errorf("refresh rate must be positive, got %v", c.Display.RefreshPerSecond)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(DataDir(), "logs", logFileName)
	}
	return nil
}

// Method returns the parsed timing method. Validate must have accepted
// the configuration first.
func (c *Config) Method() timing.Method {
	m, _ := timing.ParseMethod(c.General.TimingMethod)
	return m
}

// DataDir resolves the directory holding the run document, config and
// logs. Resolution order: the TUXSPLIT_DATADIR environment variable,
// then $XDG_CONFIG_HOME/tuxsplit, then ~/.config/tuxsplit. The
// directory is created when missing; if it cannot be, the system temp
// directory is used so the program still starts.
func DataDir() string {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return os.TempDir()
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "tuxsplit")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return os.TempDir()
	}
	return dir
}
