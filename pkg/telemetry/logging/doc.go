// Package logging provides structured logging built on log/slog.
//
// Output format (json, text, console), minimum level, and source locations
// are configurable. Commands construct one logger per invocation and
// install it as the slog default so library packages can pick it up via
// slog.Default().
package logging
