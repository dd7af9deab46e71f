// Package export writes per-agent observation tensors as CSV files.
//
// Each agent's tensor is flattened into 2-D slices (see the tensor
// package), the slices are concatenated side by side aligned by row
// position, and the resulting table is written to
// <directory>/agent_<id>.csv with a header row and a leading row-index
// column. Existing files are overwritten, so re-exporting an unchanged
// store is byte-for-byte idempotent.
//
// The Exporter orchestrates a whole sample: resolve the 1-based
// observation index to its (episode, step) pair, enumerate agents, load
// each tensor, and write one file per agent. Any failure aborts the run;
// files written before the failure remain on disk.
package export
