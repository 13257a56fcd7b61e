// Hearth Core - Household Hub
//
// This is the demo entry point for the Hearth Core hub. It builds a hub
// from configuration, seeds the declared devices, schedules and rules,
// and walks the hub's public API: switching devices, recording deferred
// commands, and evaluating automation triggers.
//
// The core is the library under internal/; this driver is deliberately
// swappable and calls only the public Hub contract.
package main

import (
	"fmt"
	"os"

	"github.com/nerrad567/hearth-core/internal/hub"
	"github.com/nerrad567/hearth-core/internal/infrastructure/config"
	"github.com/nerrad567/hearth-core/internal/infrastructure/logging"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run() error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Hearth Core",
		"version", version,
		"commit", commit,
	)

	// Load configuration; a missing file falls back to defaults so the
	// demo runs without any setup.
	configPath := getConfigPath()
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("configuration loaded",
		"path", configPath,
		"site", cfg.Site.Name,
		"devices", len(cfg.Devices),
	)

	// Build the hub and seed it from the declared inventory.
	h := hub.New()
	h.SetLogger(log.With("component", "hub"))

	for _, d := range cfg.Devices {
		if addErr := h.AddDevice(d.Kind, d.ID); addErr != nil {
			return fmt.Errorf("registering device %q: %w", d.ID, addErr)
		}
	}
	for _, s := range cfg.Schedules {
		h.SetSchedule(s.DeviceID, s.Time, s.Command)
	}
	for _, r := range cfg.Rules {
		h.AddTrigger(r.Condition, r.Action)
	}

	// Walk the public surface: switch the first declared device on,
	// then evaluate triggers against live state.
	if len(cfg.Devices) > 0 {
		h.TurnOn(cfg.Devices[0].ID)
	}

	fired := h.CheckTriggers()
	log.Info("trigger evaluation complete", "fired", len(fired))
	for _, action := range fired {
		fmt.Println("fired:", action)
	}

	fmt.Println(h.StatusReport())

	for _, task := range h.Scheduler().List() {
		fmt.Printf("scheduled: device %s at %s: %s\n", task.DeviceID, task.Time, task.Command)
	}

	return nil
}

// loadConfig loads the config file, or returns defaults when the file
// does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

// getConfigPath resolves the configuration file path.
// Priority: HEARTH_CONFIG environment variable, first CLI argument, default.
func getConfigPath() string {
	if v := os.Getenv("HEARTH_CONFIG"); v != "" {
		return v
	}
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return defaultConfigPath
}
