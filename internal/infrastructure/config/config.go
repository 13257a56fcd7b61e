package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/hearth-core/internal/device"
)

// Config is the root configuration structure for Hearth Core.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Site      SiteConfig       `yaml:"site"`
	Logging   LoggingConfig    `yaml:"logging"`
	Devices   []DeviceConfig   `yaml:"devices"`
	Schedules []ScheduleConfig `yaml:"schedules"`
	Rules     []RuleConfig     `yaml:"rules"`
}

// SiteConfig contains household-specific information.
type SiteConfig struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Timezone string `yaml:"timezone"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// DeviceConfig declares one device to register at startup.
type DeviceConfig struct {
	Kind string `yaml:"kind"`
	ID   string `yaml:"id"`
}

// ScheduleConfig declares one deferred command to record at startup.
// Time and command are opaque tokens, stored verbatim by the scheduler.
type ScheduleConfig struct {
	DeviceID string `yaml:"device_id"`
	Time     string `yaml:"time"`
	Command  string `yaml:"command"`
}

// RuleConfig declares one automation rule to store at startup.
type RuleConfig struct {
	Condition string `yaml:"condition"`
	Action    string `yaml:"action"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: HEARTH_SECTION_KEY
// For example: HEARTH_LOGGING_LEVEL, HEARTH_SITE_NAME
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Read and parse YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with sensible defaults and an empty inventory.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			ID:       "home-001",
			Name:     "Hearth",
			Timezone: "UTC",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: HEARTH_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Site
	if v := os.Getenv("HEARTH_SITE_ID"); v != "" {
		cfg.Site.ID = v
	}
	if v := os.Getenv("HEARTH_SITE_NAME"); v != "" {
		cfg.Site.Name = v
	}

	// Logging
	if v := os.Getenv("HEARTH_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HEARTH_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("HEARTH_LOGGING_OUTPUT"); v != "" {
		cfg.Logging.Output = v
	}
}

// Validate checks the configuration for errors.
//
// Device kinds are checked here so that a bad inventory fails at load
// time rather than halfway through startup registration. Schedule and
// rule entries are deliberately not validated beyond referencing a
// declared device: time, command, condition and action are opaque
// tokens by contract.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// Site validation
	if c.Site.ID == "" {
		errs = append(errs, "site.id is required")
	}

	// Device inventory validation
	declared := make(map[string]struct{}, len(c.Devices))
	for i, d := range c.Devices {
		if d.ID == "" {
			errs = append(errs, fmt.Sprintf("devices[%d].id is required", i))
		}
		if _, err := device.ParseKind(d.Kind); err != nil {
			errs = append(errs, fmt.Sprintf("devices[%d].kind %q is not recognised", i, d.Kind))
		}
		declared[d.ID] = struct{}{}
	}

	// Schedules must reference a declared device; the hub would silently
	// drop them otherwise, which is surprising in a config file.
	for i, s := range c.Schedules {
		if _, ok := declared[s.DeviceID]; !ok {
			errs = append(errs, fmt.Sprintf("schedules[%d].device_id %q is not a declared device", i, s.DeviceID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
