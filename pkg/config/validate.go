package config

import "fmt"

var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"json": true, "text": true, "console": true}
)

// Validate checks the configuration for invalid values.
func Validate(cfg *Config) error {
	if cfg.Store.BusyTimeout < 0 {
		return fmt.Errorf("store.busy_timeout must not be negative, got %s", cfg.Store.BusyTimeout)
	}
	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", cfg.Logging.Level)
	}
	if !validLogFormats[cfg.Logging.Format] {
		return fmt.Errorf("logging.format must be one of json, text, console; got %q", cfg.Logging.Format)
	}
	return nil
}
