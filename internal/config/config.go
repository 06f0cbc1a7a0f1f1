// Package config resolves the command's settings from defaults, an optional
// TOML file and VERTEXCOVER_* environment variables. Command-line flags are
// applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/vertexcover/internal/ctxlog"
)

// ErrInvalid is returned when a resolved setting is out of its domain.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds every setting the command reads.
type Config struct {
	Dataset      string        `toml:"dataset"`       // VERTEXCOVER_DATASET
	PlotPath     string        `toml:"plot_path"`     // VERTEXCOVER_PLOT_PATH (default ".")
	PlotFormat   string        `toml:"plot_format"`   // VERTEXCOVER_PLOT_FORMAT (default "svg")
	LogLevel     string        `toml:"log_level"`     // VERTEXCOVER_LOG_LEVEL (default "info")
	LogFormat    string        `toml:"log_format"`    // VERTEXCOVER_LOG_FORMAT (default "text")
	TimeLimit    time.Duration `toml:"time_limit"`    // VERTEXCOVER_TIME_LIMIT (0 = none)
	Verify       bool          `toml:"verify"`        // VERTEXCOVER_VERIFY
	ExcludeExact bool          `toml:"exclude_exact"` // VERTEXCOVER_EXCLUDE_EXACT
	JSON         bool          `toml:"json"`          // VERTEXCOVER_JSON

	// Source is the file the settings were read from, empty if none.
	Source string `toml:"-"`
}

// Environment variable names.
const (
	EnvConfig       = "VERTEXCOVER_CONFIG"
	EnvDataset      = "VERTEXCOVER_DATASET"
	EnvPlotPath     = "VERTEXCOVER_PLOT_PATH"
	EnvPlotFormat   = "VERTEXCOVER_PLOT_FORMAT"
	EnvLogLevel     = "VERTEXCOVER_LOG_LEVEL"
	EnvLogFormat    = "VERTEXCOVER_LOG_FORMAT"
	EnvTimeLimit    = "VERTEXCOVER_TIME_LIMIT"
	EnvVerify       = "VERTEXCOVER_VERIFY"
	EnvExcludeExact = "VERTEXCOVER_EXCLUDE_EXACT"
	EnvJSON         = "VERTEXCOVER_JSON"
)

// Default returns the built-in settings.
func Default() Config {
	return Config{
		PlotPath:   ".",
		PlotFormat: "svg",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load resolves defaults, then the TOML file, then the environment.
//
// The file is path if non-empty (it must exist), else $VERTEXCOVER_CONFIG
// (must exist), else $XDG_CONFIG_HOME/vertexcover/config.toml (or
// ~/.config/vertexcover/config.toml) when present.
func Load(path string) (*Config, error) {
	c := Default()

	file, required := path, true
	if file == "" {
		file = os.Getenv(EnvConfig)
	}
	if file == "" {
		file, required = defaultPath(), false
	}
	if file != "" {
		if _, err := toml.DecodeFile(file, &c); err != nil {
			if !required && errors.Is(err, fs.ErrNotExist) {
				file = ""
			} else {
				return nil, fmt.Errorf("config: %s: %w", file, err)
			}
		}
		c.Source = file
	}

	if err := c.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// defaultPath returns the per-user config file location, or "" if unknown.
func defaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "vertexcover", "config.toml")
}

func (c *Config) applyEnv(getenv func(string) string) error {
	strs := []struct {
		key string
		dst *string
	}{
		{EnvDataset, &c.Dataset},
		{EnvPlotPath, &c.PlotPath},
		{EnvPlotFormat, &c.PlotFormat},
		{EnvLogLevel, &c.LogLevel},
		{EnvLogFormat, &c.LogFormat},
	}
	for _, s := range strs {
		if v := getenv(s.key); v != "" {
			*s.dst = v
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvVerify, &c.Verify},
		{EnvExcludeExact, &c.ExcludeExact},
		{EnvJSON, &c.JSON},
	}
	for _, b := range bools {
		v := getenv(b.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", b.key, err)
		}
		*b.dst = parsed
	}

	if v := getenv(EnvTimeLimit); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeLimit, err)
		}
		c.TimeLimit = d
	}

	return nil
}

// Validate checks every setting against its domain.
func (c *Config) Validate() error {
	switch strings.ToLower(c.PlotFormat) {
	case "svg", "dot":
	default:
		return fmt.Errorf("%w: plot_format %q (want svg or dot)", ErrInvalid, c.PlotFormat)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalid, c.LogFormat)
	}
	if _, err := ctxlog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("%w: time_limit %s is negative", ErrInvalid, c.TimeLimit)
	}
	if c.PlotPath == "" {
		c.PlotPath = "."
	}

	return nil
}
