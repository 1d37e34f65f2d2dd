// Package config loads the settings of the nodetree command.
//
// The file uses a dnsmasq-style format, one "optionName value" per line:
//
//	# global options
//	log.level debug
//	log.format json
//	color never
//
//	[selector-short-circuit]
//	enabled false
//
// Section headers name demo scenarios. Settings never describe tree shapes;
// trees are always assembled in code.
package config

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the command configuration.
type Config struct {
	// Log controls the slog handler.
	Log LogConfig
	// Color is one of ColorAuto, ColorAlways or ColorNever.
	Color string
	// Scenarios holds per-scenario options, keyed by section name.
	Scenarios map[string]ScenarioConfig
	// Warnings contains any warnings generated during config loading
	Warnings []string
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string `json:"level" default:"info"`
	Format string `json:"format" default:"text"`
}

// ScenarioConfig holds the options of one [scenario] section.
type ScenarioConfig struct {
	Enabled bool `json:"enabled" default:"true"`
}

// NewConfig creates a configuration holding the defaults.
func NewConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Color:     ColorAuto,
		Scenarios: make(map[string]ScenarioConfig),
		Warnings:  make([]string, 0),
	}
}

// Load loads configuration from the default config file path.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads configuration from the specified file path. A missing
// file yields the defaults.
//
// Symlinks are rejected, so a config path cannot be pointed at an
// arbitrary file.
func LoadFromPath(path string) (*Config, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if fi.Mode()&os.ModeSymlink != 0 {
		return nil, fmt.Errorf("symlink not allowed in config path: %s", path)
	}

	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return LoadFromReader(file)
}

// LoadFromReader loads configuration from an io.Reader.
//
// Malformed values are errors. Unknown options are recorded as warnings and
// otherwise ignored.
func LoadFromReader(r io.Reader) (*Config, error) {
	config := NewConfig()
	scanner := bufio.NewScanner(r)

	var currentScenario string
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentScenario = strings.TrimSpace(strings.Trim(line, "[]"))
			if currentScenario == "" {
				return nil, fmt.Errorf("line %d: empty section name", lineNo)
			}
			if _, ok := config.Scenarios[currentScenario]; !ok {
				config.Scenarios[currentScenario] = ScenarioConfig{Enabled: true}
			}
			continue
		}

		// optionName remainingLineIsTheValue
		optionName, value, _ := strings.Cut(line, " ")
		value = strings.TrimSpace(value)

		var err error
		if currentScenario == "" {
			err = config.parseGlobalOption(optionName, value)
		} else {
			err = config.parseScenarioOption(currentScenario, optionName, value)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid option %q: %w", lineNo, optionName, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	return config, nil
}

func (c *Config) parseGlobalOption(name, value string) error {
	switch name {
	case "log.level":
		if _, err := ParseLevel(value); err != nil {
			return err
		}
		c.Log.Level = strings.ToLower(value)

	case "log.format":
		switch v := strings.ToLower(value); v {
		case "text", "json":
			c.Log.Format = v
		default:
			return fmt.Errorf("unknown log format: %s", value)
		}

	case "color":
		switch v := strings.ToLower(value); v {
		case ColorAuto, ColorAlways, ColorNever:
			c.Color = v
		default:
			enabled, err := parseBool(value)
			if err != nil {
				return fmt.Errorf("invalid color mode: %s", value)
			}
			c.Color = ColorNever
			if enabled {
				c.Color = ColorAlways
			}
		}

	default:
		c.addWarning("unknown global option: %s", name)
	}
	return nil
}

func (c *Config) parseScenarioOption(scenario, name, value string) error {
	sc := c.Scenarios[scenario]
	switch name {
	case "enabled":
		enabled, err := parseBool(value)
		if err != nil {
			return err
		}
		sc.Enabled = enabled
	default:
		c.addWarning("unknown option %s in section [%s]", name, scenario)
	}
	c.Scenarios[scenario] = sc
	return nil
}

// addWarning adds a warning to the config's warnings list. Reporting them is
// left to the caller.
func (c *Config) addWarning(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

// parseBool parses a boolean value from string.
// Accepts: true, false, 1, 0, yes, no, on, off (case-insensitive)
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %s", s)
	}
}

// ParseLevel maps a level name (debug, info, warn or error, in any case) to a
// slog.Level. Offset forms such as "info+2" are not accepted.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: want debug, info, warn or error", s)
	}
}

// ScenarioEnabled reports whether the named scenario should run. Scenarios
// without a section are enabled.
func (c *Config) ScenarioEnabled(name string) bool {
	sc, ok := c.Scenarios[name]
	return !ok || sc.Enabled
}

// HasWarnings returns true if there are any warnings.
func (c *Config) HasWarnings() bool {
	return len(c.Warnings) > 0
}
