// Package tensor reconstructs N-dimensional observation tensors from their
// stored form and flattens them into 2-D tabular slices.
//
// # Decoding
//
// A stored observation is a pair of blobs: a JSON-encoded shape (a list of
// positive dimension sizes) and a zlib-compressed buffer of little-endian
// float64 values in row-major order. Decode reverses both steps and
// validates that the element count matches the shape.
//
// # Flattening
//
// Flatten decomposes a tensor of arbitrary rank into an ordered sequence of
// 2-D slices by iterating every leading axis beyond the last two, depth
// first in ascending index order. Column names encode the full path of
// fixed leading indices joined by underscores, so a rank-4 tensor yields
// columns like "0_3_0", "0_3_1", ... and every column within one tensor's
// slice sequence is uniquely named:
//
//	shape [2,3]   -> 1 slice,  columns 0, 1, 2
//	shape [2,2,3] -> 2 slices, columns 0_0, 0_1, 0_2 and 1_0, 1_1, 1_2
//
// Slice order determines final column order when the slices are
// concatenated side by side into one exported table.
package tensor
