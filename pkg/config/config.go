package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML duration strings
// such as "5s" or "250ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"5s\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the value as a time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// String returns the standard duration formatting.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// Config is the root configuration for the tycho CLI. It is immutable once
// loaded; commands copy the values they need instead of mutating it.
type Config struct {
	// Store configures access to the observation store.
	Store StoreConfig `yaml:"store"`

	// Logging configures structured log output.
	Logging LoggingConfig `yaml:"logging"`

	// Export configures CSV export behavior.
	Export ExportConfig `yaml:"export"`
}

// StoreConfig configures the SQLite observation store.
type StoreConfig struct {
	// Path is the default store file path, overridden by the -f flag.
	Path string `yaml:"path"`

	// BusyTimeout is how long to wait for database locks before failing.
	BusyTimeout Duration `yaml:"busy_timeout"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is the output format: json, text, console.
	Format string `yaml:"format"`

	// AddSource includes file:line in log records.
	AddSource bool `yaml:"add_source"`
}

// ExportConfig configures CSV export behavior.
type ExportConfig struct {
	// Destination is the default output directory, overridden by the
	// -d flag.
	Destination string `yaml:"destination"`
}
