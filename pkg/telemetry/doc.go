// Package telemetry groups the observability subpackages: structured
// logging (logging) and export run metrics (metrics).
package telemetry
