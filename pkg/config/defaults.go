package config

import "time"

// Default configuration values.
const (
	DefaultBusyTimeout = Duration(5 * time.Second)
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)

// ApplyDefaults fills in zero-valued fields with defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Store.BusyTimeout == 0 {
		cfg.Store.BusyTimeout = DefaultBusyTimeout
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
