// Package config provides YAML-based configuration for the tycho CLI.
//
// Configuration is optional: every field has a default, command-line flags
// override file values, and environment variables (TYCHO_SECTION_FIELD)
// override both. The loading sequence is:
//
//  1. Load YAML from file (if present)
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate the final configuration
package config
