// Package metrics tracks export run metrics with Prometheus instruments.
//
// Metrics:
//   - tycho_exports_total: Export runs by outcome
//   - tycho_agents_exported_total: Agent CSV files written
//   - tycho_rows_written_total: Data rows written across all files
//   - tycho_export_duration_seconds: End-to-end export duration
//
// The tool is single-shot, so there is no exposition endpoint; the
// collector owns a private registry and the gathered values are logged as
// a debug summary at the end of a run.
package metrics
