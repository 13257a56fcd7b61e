// Package config handles loading and validating Hearth Core configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of required fields and the device inventory
//   - Default value handling
//
// Besides site and logging settings, the configuration carries a
// declarative inventory: devices to register, deferred commands to
// record, and automation rules to store when the hub starts. Device
// kinds are validated at load time; schedule times, commands, rule
// conditions and actions are opaque tokens and pass through verbatim.
//
// Performance Characteristics:
//   - Configuration is loaded once at startup
//   - No runtime overhead after initial load
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Site.Name)
package config
