// Package cli provides shared helpers for the tycho commands: typed
// command-boundary errors and output formatting.
package cli
